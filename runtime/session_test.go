package runtime

import (
	"bufio"
	"care-chat/auth"
	"care-chat/contract"
	"care-chat/domain"
	"care-chat/errors"
	"care-chat/mocks"
	"care-chat/protocol"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionHarness struct {
	client  net.Conn
	reader  *bufio.Reader
	session *Session
	done    chan error
}

func startSession(t *testing.T, ctx context.Context, registry contract.ISessionRegistry, router contract.IRouter) *sessionHarness {
	t.Helper()
	server, client := net.Pipe()
	options := SessionOptions{HandshakeTimeout: 200 * time.Millisecond, WriteTimeout: time.Second, OutboundBuffer: 4}
	session := NewSession(server, discardLogger(), registry, router, auth.NewPlainAuthenticator(), options)

	h := &sessionHarness{client: client, reader: bufio.NewReader(client), session: session, done: make(chan error, 1)}
	go func() { h.done <- session.Run(ctx) }()
	t.Cleanup(func() { _ = client.Close() })
	return h
}

func (h *sessionHarness) send(t *testing.T, frame protocol.Frame) {
	t.Helper()
	require.NoError(t, h.client.SetWriteDeadline(time.Now().Add(time.Second)))
	require.NoError(t, protocol.WriteFrame(h.client, frame))
}

func (h *sessionHarness) receive(t *testing.T) protocol.Frame {
	t.Helper()
	require.NoError(t, h.client.SetReadDeadline(time.Now().Add(time.Second)))
	frame, err := protocol.ReadFrame(h.reader)
	require.NoError(t, err)
	return frame
}

func (h *sessionHarness) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("session did not terminate")
		return nil
	}
}

// login performs the handshake and consumes the server acknowledgement.
func (h *sessionHarness) login(t *testing.T, registry *Registry, userID string) {
	t.Helper()
	h.send(t, protocol.TextFrame(userID))
	text, err := h.receive(t).Text()
	require.NoError(t, err)
	require.True(t, protocol.IsConnected(text), "unexpected first frame %q", text)
	waitRegistered(t, registry, userID, h.session)
}

func waitRegistered(t *testing.T, registry *Registry, userID string, session contract.ISession) {
	t.Helper()
	require.Eventually(t, func() bool {
		current, ok := registry.Lookup(userID)
		return ok && current == session
	}, time.Second, 5*time.Millisecond)
}

func TestSession_Handshake_Registers_And_Disconnect_Deregisters(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	h := startSession(t, context.Background(), registry, mocks.NewMockIRouter(gomock.NewController(t)))

	// Given a client that introduces itself
	h.send(t, protocol.TextFrame("patient1"))

	// Then the server acknowledges first and the session is reachable under that identity
	text, err := h.receive(t).Text()
	req.NoError(err)
	req.Equal(protocol.Connected, text)
	waitRegistered(t, registry, "patient1", h.session)
	req.Equal("patient1", h.session.UserID())
	req.Equal(StateActive, h.session.State())

	// When the client goes away
	req.NoError(h.client.Close())

	// Then the session ends cleanly and leaves the registry
	req.NoError(h.wait(t))
	req.Zero(registry.Len())
	req.Equal(StateClosed, h.session.State())
}

func TestSession_Malformed_Handshake_Never_Registers(t *testing.T) {
	tests := []struct {
		name  string
		frame protocol.Frame
	}{
		{"Message frame first", protocol.MessageFrame(domain.NewMessage("patient1", "", "doctor1", "Hi"))},
		{"Blank identifier", protocol.TextFrame("   ")},
		{"Invalid UTF-8", protocol.Frame{Type: protocol.FrameText, Payload: []byte{0xff, 0xfe}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			registry := NewRegistry(discardLogger())
			h := startSession(t, context.Background(), registry, mocks.NewMockIRouter(gomock.NewController(t)))

			h.send(t, tt.frame)

			req.ErrorIs(h.wait(t), errors.ErrHandshake)
			req.Zero(registry.Len())
			req.Equal(StateClosed, h.session.State())
		})
	}
}

func TestSession_Handshake_Timeout(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	h := startSession(t, context.Background(), registry, mocks.NewMockIRouter(gomock.NewController(t)))

	// Nothing is sent
	req.ErrorIs(h.wait(t), errors.ErrHandshake)
	req.Zero(registry.Len())
}

func TestSession_Routes_Messages_And_Skips_Unknown_Frames(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	router := mocks.NewMockIRouter(gomock.NewController(t))
	h := startSession(t, context.Background(), registry, router)

	router.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sender contract.ISession, message domain.Message) error {
			req.Equal("patient1", sender.UserID())
			// An empty sender is taken from the session identity
			req.Equal("patient1", message.SenderID)
			req.Equal("Hello Doctor", message.Content)
			return sender.Acknowledge()
		}).
		Times(1)

	h.login(t, registry, "patient1")

	h.send(t, protocol.Frame{Type: protocol.FrameType(42), Payload: []byte("future feature")})
	h.send(t, protocol.MessageFrame(domain.NewMessage("", "", "doctor1", "Hello Doctor")))

	frame := h.receive(t)
	text, err := frame.Text()
	req.NoError(err)
	req.True(protocol.IsDelivered(text))
}

func TestSession_Answers_History_Requests(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	router := mocks.NewMockIRouter(gomock.NewController(t))
	h := startSession(t, context.Background(), registry, router)
	stored := domain.NewMessage("patient1", "John Doe", "doctor1", "Hello")

	router.EXPECT().History("doctor1", "patient1").Return([]domain.Message{stored}, nil)
	router.EXPECT().History("doctor1", "").Return(nil, errors.ErrInvalidHistory)

	// Given a doctor who was offline
	h.login(t, registry, "doctor1")

	// When the conversation with a patient is requested
	h.send(t, protocol.HistoryRequestFrame("patient1"))

	// Then the stored messages come back in a history frame
	frame := h.receive(t)
	req.Equal(protocol.FrameHistory, frame.Type)
	history, err := protocol.DecodeHistory(frame.Payload)
	req.NoError(err)
	req.Equal("patient1", history.PeerID)
	req.Len(history.Messages, 1)
	req.Equal(stored.ID, history.Messages[0].ID)
	req.Equal("Hello", history.Messages[0].Content)

	// And an incomplete request is refused without closing the session
	h.send(t, protocol.HistoryRequestFrame(""))
	text, err := h.receive(t).Text()
	req.NoError(err)
	req.True(protocol.IsFailed(text))
	req.Equal(StateActive, h.session.State())
}

func TestSession_Rejects_Foreign_Sender(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	router := mocks.NewMockIRouter(gomock.NewController(t))
	router.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h := startSession(t, context.Background(), registry, router)

	h.login(t, registry, "patient1")

	h.send(t, protocol.MessageFrame(domain.NewMessage("doctor1", "Dr. Smith", "patient2", "Spoofed")))

	text, err := h.receive(t).Text()
	req.NoError(err)
	req.True(protocol.IsFailed(text))
	req.Equal(StateActive, h.session.State())
}

func TestSession_Malformed_Message_Closes_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	h := startSession(t, context.Background(), registry, mocks.NewMockIRouter(gomock.NewController(t)))

	h.login(t, registry, "patient1")

	h.send(t, protocol.Frame{Type: protocol.FrameMessage, Payload: []byte{0xff, 0xff, 0xff}})

	req.ErrorIs(h.wait(t), errors.ErrMalformedFrame)
	req.Zero(registry.Len())
}

func TestSession_Deliver_Writes_Message_Frame(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	h := startSession(t, context.Background(), registry, mocks.NewMockIRouter(gomock.NewController(t)))

	h.login(t, registry, "doctor1")

	message := domain.NewMessage("patient1", "John Doe", "doctor1", "Hello Doctor")
	delivered := make(chan error, 1)
	go func() { delivered <- h.session.Deliver(message) }()

	frame := h.receive(t)
	req.Equal(protocol.FrameMessage, frame.Type)
	decoded, err := protocol.DecodeMessage(frame.Payload)
	req.NoError(err)
	req.Equal(message.ID, decoded.ID)
	req.Equal("Hello Doctor", decoded.Content)
	req.NoError(<-delivered)
}

func TestSession_Duplicate_Login_Evicts_Previous(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	ctrl := gomock.NewController(t)

	first := startSession(t, context.Background(), registry, mocks.NewMockIRouter(ctrl))
	first.login(t, registry, "doctor1")

	// When the same user connects again
	second := startSession(t, context.Background(), registry, mocks.NewMockIRouter(ctrl))
	second.login(t, registry, "doctor1")

	// Then the older session is closed and the newer one keeps the slot
	req.NoError(first.wait(t))
	current, ok := registry.Lookup("doctor1")
	req.True(ok)
	req.Same(second.session, current)
	req.ErrorIs(first.session.Acknowledge(), errors.ErrSessionClosed)
}

func TestSession_Context_Cancellation_Closes(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	h := startSession(t, ctx, registry, mocks.NewMockIRouter(gomock.NewController(t)))

	h.login(t, registry, "patient1")

	cancel()

	req.NoError(h.wait(t))
	req.Zero(registry.Len())
	req.Equal(StateClosed, h.session.State())
}

func TestSessionState_String(t *testing.T) {
	req := require.New(t)
	req.Equal("CONNECTING", StateConnecting.String())
	req.Equal("ACTIVE", StateActive.String())
	req.Equal("CLOSED", StateClosed.String())
	req.Equal("SessionState(9)", SessionState(9).String())
}

package runtime

import (
	"bufio"
	"care-chat/contract"
	"care-chat/domain"
	"care-chat/errors"
	"care-chat/protocol"
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// SessionState only moves forward: CONNECTING -> HANDSHAKING -> ACTIVE -> CLOSING -> CLOSED.
// HANDSHAKING may jump straight to CLOSED. CLOSED is terminal.
type SessionState int32

const (
	StateConnecting SessionState = iota
	StateHandshaking
	StateActive
	StateClosing
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateConnecting:
		return "CONNECTING"
	case StateHandshaking:
		return "HANDSHAKING"
	case StateActive:
		return "ACTIVE"
	case StateClosing:
		return "CLOSING"
	case StateClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("SessionState(%d)", int32(s))
	}
}

type SessionOptions struct {
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	OutboundBuffer   int
}

func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		HandshakeTimeout: 10 * time.Second,
		WriteTimeout:     5 * time.Second,
		OutboundBuffer:   64,
	}
}

var _ contract.ISession = (*Session)(nil)

type outbound struct {
	frame protocol.Frame
	done  chan error
}

// Session serves one accepted connection.
// A CONNECTED text frame is the first thing written once the handshake is accepted.
//
// The goroutine running Run is the only reader of the connection and
// writeLoop is the only writer: Deliver, Acknowledge and Reject enqueue a
// frame and wait for writeLoop to report the outcome.
type Session struct {
	id            uuid.UUID
	conn          net.Conn
	reader        *bufio.Reader
	log           *slog.Logger
	registry      contract.ISessionRegistry
	router        contract.IRouter
	authenticator contract.IAuthenticator
	options       SessionOptions

	state      atomic.Int32
	userID     atomic.Value
	outbound   chan outbound
	closed     chan struct{}
	closeOnce  sync.Once
	writerDone chan struct{}
}

func NewSession(conn net.Conn, log *slog.Logger, registry contract.ISessionRegistry,
	router contract.IRouter, authenticator contract.IAuthenticator, options SessionOptions) *Session {
	id := uuid.New()
	return &Session{
		id:            id,
		conn:          conn,
		reader:        bufio.NewReader(conn),
		log:           log.With("session_id", id.String(), "remote", conn.RemoteAddr().String()),
		registry:      registry,
		router:        router,
		authenticator: authenticator,
		options:       options,
		outbound:      make(chan outbound, options.OutboundBuffer),
		closed:        make(chan struct{}),
		writerDone:    make(chan struct{}),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) State() SessionState { return SessionState(s.state.Load()) }

// UserID is empty until the handshake succeeded.
func (s *Session) UserID() string {
	id, _ := s.userID.Load().(string)
	return id
}

// Run drives the session until the peer leaves, a transport error occurs or ctx is done.
// Cleanup happens on every exit path.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.finish()

	go s.writeLoop()
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.closed:
		}
	}()

	s.transition(StateHandshaking)
	if err := s.handshake(); err != nil {
		s.log.Debug("Dropping connection before handshake completed", "error", err)
		return err
	}
	s.transition(StateActive)
	return s.receiveLoop(ctx)
}

func (s *Session) handshake() error {
	if err := s.conn.SetReadDeadline(time.Now().Add(s.options.HandshakeTimeout)); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrHandshake, err)
	}
	frame, err := protocol.ReadFrame(s.reader)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrHandshake, err)
	}
	text, err := frame.Text()
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrHandshake, err)
	}
	userID, err := s.authenticator.Authenticate(text)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrHandshake, err)
	}
	if err = s.conn.SetReadDeadline(time.Time{}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrHandshake, err)
	}

	s.userID.Store(userID)
	// Queued before registering so no forward can overtake it.
	if err = s.post(protocol.ConnectedFrame()); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrHandshake, err)
	}
	if previous := s.registry.Register(userID, s); previous != nil {
		s.log.Info("Duplicate login, closing superseded session", "user_id", userID)
		go previous.Close()
	}
	s.log.Info("User connected to chat server", "user_id", userID)
	return nil
}

func (s *Session) receiveLoop(ctx context.Context) error {
	userID := s.UserID()
	for {
		frame, err := protocol.ReadFrame(s.reader)
		if err != nil {
			if s.isClosed() || isDisconnect(err) {
				return nil
			}
			s.log.Warn("Read failed, closing session", "user_id", userID, "error", err)
			return err
		}

		switch frame.Type {
		case protocol.FrameMessage:
			message, err := protocol.DecodeMessage(frame.Payload)
			if err != nil {
				s.log.Warn("Malformed message frame, closing session", "user_id", userID, "error", err)
				return err
			}
			if message.SenderID == "" {
				message.SenderID = userID
			}
			if message.SenderID != userID {
				s.log.Warn("Rejecting message with foreign sender", "user_id", userID, "sender_id", message.SenderID)
				_ = s.Reject(errors.ErrSenderMismatch)
				continue
			}
			// Failures were already reported to the sender by the router.
			_ = s.router.Process(ctx, s, message)
		case protocol.FrameHistory:
			request, err := protocol.DecodeHistory(frame.Payload)
			if err != nil {
				s.log.Warn("Malformed history frame, closing session", "user_id", userID, "error", err)
				return err
			}
			s.replayHistory(userID, request.PeerID)
		default:
			s.log.Warn("Ignoring unsupported frame", "user_id", userID, "type", frame.Type.String())
		}
	}
}

func (s *Session) replayHistory(userID, peerID string) {
	messages, err := s.router.History(userID, peerID)
	if err != nil {
		_ = s.Reject(err)
		return
	}
	if err = s.send(protocol.HistoryFrame(peerID, messages)); err != nil {
		s.log.Warn("History not sent", "user_id", userID, "peer_id", peerID, "error", err)
	}
}

func (s *Session) Deliver(message domain.Message) error {
	return s.send(protocol.MessageFrame(message))
}

func (s *Session) Acknowledge() error {
	return s.send(protocol.DeliveredFrame())
}

func (s *Session) Reject(reason error) error {
	return s.send(protocol.FailedFrame(reason))
}

// Close unblocks the reader and stops the writer. It is safe to call many times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.state.CompareAndSwap(int32(StateActive), int32(StateClosing))
		close(s.closed)
		_ = s.conn.Close()
	})
}

// finish releases everything the session holds, whatever made Run return.
func (s *Session) finish() {
	s.Close()
	if userID := s.UserID(); userID != "" {
		if s.registry.Deregister(userID, s) {
			s.log.Info("User disconnected from chat server", "user_id", userID)
		}
	}
	<-s.writerDone
	s.transition(StateClosed)
}

// post queues frame without waiting for the writer.
func (s *Session) post(frame protocol.Frame) error {
	select {
	case s.outbound <- outbound{frame: frame, done: make(chan error, 1)}:
		return nil
	case <-s.closed:
		return errors.ErrSessionClosed
	}
}

func (s *Session) send(frame protocol.Frame) error {
	item := outbound{frame: frame, done: make(chan error, 1)}
	select {
	case s.outbound <- item:
	case <-s.closed:
		return errors.ErrSessionClosed
	}
	select {
	case err := <-item.done:
		return err
	case <-s.writerDone:
		select {
		case err := <-item.done:
			return err
		default:
			return errors.ErrSessionClosed
		}
	}
}

func (s *Session) writeLoop() {
	defer close(s.writerDone)
	writer := bufio.NewWriter(s.conn)
	for {
		select {
		case <-s.closed:
			s.drain()
			return
		case item := <-s.outbound:
			err := s.write(writer, item.frame)
			item.done <- err
			if err != nil {
				s.log.Warn("Write failed, closing session", "user_id", s.UserID(), "error", err)
				s.Close()
				s.drain()
				return
			}
		}
	}
}

func (s *Session) write(writer *bufio.Writer, frame protocol.Frame) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.options.WriteTimeout)); err != nil {
		return err
	}
	if err := protocol.WriteFrame(writer, frame); err != nil {
		return err
	}
	return writer.Flush()
}

// drain fails every frame still queued once the writer stops.
func (s *Session) drain() {
	for {
		select {
		case item := <-s.outbound:
			item.done <- errors.ErrSessionClosed
		default:
			return
		}
	}
}

func (s *Session) transition(to SessionState) bool {
	for {
		from := s.state.Load()
		if SessionState(from) >= to {
			return false
		}
		if s.state.CompareAndSwap(from, int32(to)) {
			return true
		}
	}
}

func (s *Session) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func isDisconnect(err error) bool {
	return goerrors.Is(err, io.EOF) || goerrors.Is(err, net.ErrClosed)
}

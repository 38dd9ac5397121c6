package client

import (
	"bufio"
	"care-chat/domain"
	"care-chat/errors"
	"care-chat/protocol"
	"context"
	goerrors "errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeServer accepts one connection, acknowledges the handshake and replays frames
// once the client sent a second frame.
func fakeServer(t *testing.T, replies ...protocol.Frame) (string, <-chan protocol.Frame) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return serveFake(t, lis, replies...)
}

func serveFake(t *testing.T, lis net.Listener, replies ...protocol.Frame) (string, <-chan protocol.Frame) {
	t.Helper()
	t.Cleanup(func() { _ = lis.Close() })

	received := make(chan protocol.Frame, 4)
	go func() {
		conn, err := lis.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		reader := bufio.NewReader(conn)

		handshake, err := protocol.ReadFrame(reader)
		if err != nil {
			return
		}
		received <- handshake
		if err = protocol.WriteFrame(conn, protocol.ConnectedFrame()); err != nil {
			return
		}

		frame, err := protocol.ReadFrame(reader)
		if err != nil {
			return
		}
		received <- frame
		for _, reply := range replies {
			if err := protocol.WriteFrame(conn, reply); err != nil {
				return
			}
		}
		_, _ = reader.ReadByte()
	}()
	return lis.Addr().String(), received
}

// adjacentListeners binds two consecutive loopback ports.
func adjacentListeners(t *testing.T) (int, net.Listener, net.Listener) {
	t.Helper()
	for i := 0; i < 20; i++ {
		first, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := first.Addr().(*net.TCPAddr).Port
		second, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port+1)))
		if err == nil {
			return port, first, second
		}
		_ = first.Close()
	}
	t.Skip("no two adjacent free ports")
	return 0, nil, nil
}

func TestClient_Handshake_Send_Receive(t *testing.T) {
	req := require.New(t)
	forwarded := domain.NewMessage("doctor1", "Dr. Smith", "patient1", "How are you?")
	address, received := fakeServer(t,
		protocol.DeliveredFrame(),
		protocol.MessageFrame(forwarded),
		protocol.FailedFrame(errors.ErrPersistence),
		protocol.TextFrame("welcome"),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Given a connected client
	c, err := Dial(ctx, address, "patient1")
	req.NoError(err)
	defer c.Close()

	// When it sends a message
	sent, err := c.Send("doctor1", "Hello Doctor")
	req.NoError(err)

	// Then the server sees the handshake then the message, without a sender
	handshake, err := (<-received).Text()
	req.NoError(err)
	req.Equal("patient1", handshake)
	frame := <-received
	req.Equal(protocol.FrameMessage, frame.Type)
	decoded, err := protocol.DecodeMessage(frame.Payload)
	req.NoError(err)
	req.Equal(sent.ID, decoded.ID)
	req.Empty(decoded.SenderID)
	req.Equal("doctor1", decoded.ReceiverID)

	// And replies are classified
	event, err := c.Receive(ctx)
	req.NoError(err)
	req.Equal(EventDelivered, event.Kind)

	event, err = c.Receive(ctx)
	req.NoError(err)
	req.Equal(EventMessage, event.Kind)
	req.Equal("How are you?", event.Message.Content)
	req.Equal("Dr. Smith", event.Message.SenderName)

	event, err = c.Receive(ctx)
	req.NoError(err)
	req.Equal(EventFailed, event.Kind)
	req.Equal(errors.ErrPersistence.Error(), event.Reason())

	event, err = c.Receive(ctx)
	req.NoError(err)
	req.Equal(EventText, event.Kind)
	req.Equal("welcome", event.Text)
}

func TestClient_History_Keeps_Interleaved_Events(t *testing.T) {
	req := require.New(t)
	stored := domain.NewMessage("patient1", "John Doe", "doctor1", "Hello")
	live := domain.NewMessage("patient2", "Jane Roe", "doctor1", "Are you there?")
	address, received := fakeServer(t,
		protocol.MessageFrame(live),
		protocol.HistoryFrame("patient1", []domain.Message{stored}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, err := Dial(ctx, address, "doctor1")
	req.NoError(err)
	defer c.Close()

	// When the doctor loads the conversation with patient1
	messages, err := c.History(ctx, "patient1")

	// Then the stored message is returned
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal(stored.ID, messages[0].ID)

	<-received
	request, err := protocol.DecodeHistory((<-received).Payload)
	req.NoError(err)
	req.Equal("patient1", request.PeerID)

	// And the live message that arrived first is still delivered
	event, err := c.Receive(ctx)
	req.NoError(err)
	req.Equal(EventMessage, event.Kind)
	req.Equal("Are you there?", event.Message.Content)
}

func TestClient_History_Refused(t *testing.T) {
	req := require.New(t)
	address, _ := fakeServer(t, protocol.FailedFrame(errors.ErrInvalidHistory))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, err := Dial(ctx, address, "doctor1")
	req.NoError(err)
	defer c.Close()

	_, err = c.History(ctx, "")

	req.ErrorIs(err, errors.ErrInvalidHistory)
}

func TestClient_Receive_Honors_Deadline(t *testing.T) {
	req := require.New(t)
	address, _ := fakeServer(t)

	c, err := Dial(context.Background(), address, "patient1")
	req.NoError(err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Receive(ctx)

	var netErr net.Error
	req.True(goerrors.As(err, &netErr))
	req.True(netErr.Timeout())
}

func TestDial_Rejects_Peer_That_Does_Not_Acknowledge(t *testing.T) {
	req := require.New(t)

	// Given a process that accepts connections but speaks another protocol
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	defer lis.Close()
	go func() {
		conn, err := lis.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_ = protocol.WriteFrame(conn, protocol.TextFrame("HELLO FROM SOMETHING ELSE"))
		_, _ = bufio.NewReader(conn).ReadByte()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = Dial(ctx, lis.Addr().String(), "patient1")

	req.ErrorIs(err, errors.ErrHandshake)
}

func TestDialRange_Nothing_Listening(t *testing.T) {
	req := require.New(t)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	port := lis.Addr().(*net.TCPAddr).Port
	req.NoError(lis.Close())

	_, err = DialRange(context.Background(), "127.0.0.1", port, 1, "patient1")

	req.ErrorIs(err, errors.ErrAllPortsInUse)
	req.Contains(err.Error(), strconv.Itoa(port))
}

func TestDialRange_Finds_Server(t *testing.T) {
	req := require.New(t)
	address, received := fakeServer(t)
	host, portText, err := net.SplitHostPort(address)
	req.NoError(err)
	port, err := strconv.Atoi(portText)
	req.NoError(err)

	c, err := DialRange(context.Background(), host, port, 3, "doctor1")
	req.NoError(err)
	defer c.Close()

	handshake, err := (<-received).Text()
	req.NoError(err)
	req.Equal("doctor1", handshake)
}

func TestDialRange_Skips_Silent_Process_On_Base_Port(t *testing.T) {
	req := require.New(t)

	// Given another process holding the base port without ever answering
	base, squatter, next := adjacentListeners(t)
	defer squatter.Close()
	_, received := serveFake(t, next, protocol.DeliveredFrame())

	// When the client scans the range
	c, err := DialRange(context.Background(), "127.0.0.1", base, 3, "patient1")
	req.NoError(err)
	defer c.Close()

	// Then it ends up on the chat server at base+1
	req.Equal(strconv.Itoa(base+1), portOf(t, c.conn.RemoteAddr()))
	handshake, err := (<-received).Text()
	req.NoError(err)
	req.Equal("patient1", handshake)

	_, err = c.Send("doctor1", "Hello")
	req.NoError(err)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	event, err := c.Receive(ctx)
	req.NoError(err)
	req.Equal(EventDelivered, event.Kind)
}

func portOf(t *testing.T, addr net.Addr) string {
	t.Helper()
	_, port, err := net.SplitHostPort(addr.String())
	require.NoError(t, err)
	return port
}

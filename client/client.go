// Package client speaks the chat wire protocol from the user side.
package client

import (
	"bufio"
	"care-chat/domain"
	"care-chat/errors"
	"care-chat/protocol"
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventKind int

const (
	EventMessage EventKind = iota
	EventDelivered
	EventFailed
	EventText
	EventHistory
)

// HandshakeTimeout bounds the wait for the server acknowledgement when ctx has no earlier deadline.
const HandshakeTimeout = 3 * time.Second

// Event is one frame received from the server.
type Event struct {
	Kind    EventKind
	Message domain.Message
	Text    string
	// PeerID and Messages are set on EventHistory.
	PeerID   string
	Messages []domain.Message
}

// Reason returns the failure reason carried by an EventFailed.
func (e Event) Reason() string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(e.Text, protocol.FailedPrefix), ":"))
}

// Client is safe for one reader and many writers.
// Receive and History must not run concurrently.
type Client struct {
	conn    net.Conn
	reader  *bufio.Reader
	mu      sync.Mutex
	readMu  sync.Mutex
	pending []Event
}

// Dial connects to address, performs the handshake and waits for the server to accept it.
// A peer that does not answer with CONNECTED is not a chat server.
func Dial(ctx context.Context, address, handshake string) (*Client, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, err
	}
	c := &Client{conn: conn, reader: bufio.NewReader(conn)}
	if err = c.awaitConnected(ctx, handshake); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrHandshake, address, err)
	}
	return c, nil
}

func (c *Client) awaitConnected(ctx context.Context, handshake string) error {
	deadline := time.Now().Add(HandshakeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return err
	}
	if err := c.SendFrame(protocol.TextFrame(handshake)); err != nil {
		return err
	}
	frame, err := protocol.ReadFrame(c.reader)
	if err != nil {
		return err
	}
	text, err := frame.Text()
	if err != nil {
		return err
	}
	if !protocol.IsConnected(text) {
		return fmt.Errorf("unexpected reply %q", text)
	}
	return c.conn.SetDeadline(time.Time{})
}

// DialRange tries every port the server may have fallen back to, in order.
// Ports held by something that is not a chat server are skipped.
func DialRange(ctx context.Context, host string, basePort, attempts int, handshake string) (*Client, error) {
	var lastErr error
	for offset := 0; offset < attempts; offset++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		address := net.JoinHostPort(host, strconv.Itoa(basePort+offset))
		c, err := Dial(ctx, address, handshake)
		if err == nil {
			return c, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %d-%d: %v", errors.ErrAllPortsInUse, basePort, basePort+attempts-1, lastErr)
}

// Send addresses content to receiverID. The server fills the sender from the session.
func (c *Client) Send(receiverID, content string) (domain.Message, error) {
	message := domain.Message{
		ID:         uuid.New(),
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}
	return message, c.SendFrame(protocol.MessageFrame(message))
}

func (c *Client) SendFrame(frame protocol.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return protocol.WriteFrame(c.conn, frame)
}

// History asks for the conversation with peerID and waits for the reply.
// Events arriving meanwhile are kept for Receive.
func (c *Client) History(ctx context.Context, peerID string) ([]domain.Message, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	if err := c.SendFrame(protocol.HistoryRequestFrame(peerID)); err != nil {
		return nil, err
	}
	for {
		event, err := c.read(ctx)
		if err != nil {
			return nil, err
		}
		switch {
		case event.Kind == EventHistory && event.PeerID == peerID:
			return event.Messages, nil
		case event.Kind == EventFailed && strings.Contains(event.Reason(), errors.ErrInvalidHistory.Error()):
			return nil, fmt.Errorf("%w: %s", errors.ErrInvalidHistory, event.Reason())
		default:
			c.pending = append(c.pending, event)
		}
	}
}

// Receive blocks for the next frame, honoring the ctx deadline if any.
func (c *Client) Receive(ctx context.Context) (Event, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	if len(c.pending) > 0 {
		event := c.pending[0]
		c.pending = c.pending[1:]
		return event, nil
	}
	return c.read(ctx)
}

func (c *Client) read(ctx context.Context) (Event, error) {
	deadline, _ := ctx.Deadline()
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return Event{}, err
	}
	frame, err := protocol.ReadFrame(c.reader)
	if err != nil {
		return Event{}, err
	}

	switch frame.Type {
	case protocol.FrameMessage:
		message, err := protocol.DecodeMessage(frame.Payload)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventMessage, Message: message}, nil
	case protocol.FrameHistory:
		history, err := protocol.DecodeHistory(frame.Payload)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventHistory, PeerID: history.PeerID, Messages: history.Messages}, nil
	case protocol.FrameText:
		text, err := frame.Text()
		if err != nil {
			return Event{}, err
		}
		switch {
		case protocol.IsDelivered(text):
			return Event{Kind: EventDelivered, Text: text}, nil
		case protocol.IsFailed(text):
			return Event{Kind: EventFailed, Text: text}, nil
		default:
			return Event{Kind: EventText, Text: text}, nil
		}
	default:
		return Event{}, fmt.Errorf("%w: unsupported frame type %s", errors.ErrMalformedFrame, frame.Type)
	}
}

func (c *Client) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

func (c *Client) Close() error {
	return c.conn.Close()
}

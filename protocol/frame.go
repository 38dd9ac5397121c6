// Package protocol implements the framed object stream spoken between chat clients and the server.
//
// A frame is laid out as [type:1 byte][payload length: uvarint][payload].
// Text frames carry UTF-8 strings (handshake identity, acknowledgements);
// Message frames carry a protowire-encoded domain.Message;
// History frames carry a conversation request or its reply.
package protocol

import (
	"bufio"
	"care-chat/errors"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

type FrameType byte

const (
	FrameText    FrameType = 1
	FrameMessage FrameType = 2
	FrameHistory FrameType = 3
)

const (
	MaxFrameSize = 1 << 20

	// Connected is the server's first frame once the handshake was accepted.
	Connected = "CONNECTED"

	// Delivered is sent back to a sender once its message is durably stored.
	Delivered = "DELIVERED"
	// FailedPrefix starts every text frame reporting a delivery failure.
	FailedPrefix = "FAILED"
)

func (t FrameType) String() string {
	switch t {
	case FrameText:
		return "text"
	case FrameMessage:
		return "message"
	case FrameHistory:
		return "history"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}

type Frame struct {
	Type    FrameType
	Payload []byte
}

func TextFrame(text string) Frame {
	return Frame{Type: FrameText, Payload: []byte(text)}
}

func ConnectedFrame() Frame {
	return TextFrame(Connected)
}

func DeliveredFrame() Frame {
	return TextFrame(Delivered)
}

func FailedFrame(reason error) Frame {
	return TextFrame(fmt.Sprintf("%s: %v", FailedPrefix, reason))
}

// Text returns the payload of a text frame.
func (f Frame) Text() (string, error) {
	if f.Type != FrameText {
		return "", fmt.Errorf("%w: expected text frame, got %s", errors.ErrMalformedFrame, f.Type)
	}
	if !utf8.Valid(f.Payload) {
		return "", fmt.Errorf("%w: text frame is not valid UTF-8", errors.ErrMalformedFrame)
	}
	return string(f.Payload), nil
}

func IsConnected(text string) bool {
	return text == Connected
}

func IsDelivered(text string) bool {
	return text == Delivered
}

func IsFailed(text string) bool {
	return strings.HasPrefix(text, FailedPrefix)
}

// WriteFrame encodes f into a single buffer and writes it with one call.
func WriteFrame(w io.Writer, f Frame) error {
	if len(f.Payload) > MaxFrameSize {
		return errors.ErrFrameTooLarge
	}
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(f.Payload))
	buf = append(buf, byte(f.Type))
	buf = protowire.AppendVarint(buf, uint64(len(f.Payload)))
	buf = append(buf, f.Payload...)
	_, err := w.Write(buf)
	return err
}

// ReadFrame blocks until a complete frame is available.
// io.EOF is returned untouched when the peer closed cleanly between frames.
func ReadFrame(r *bufio.Reader) (Frame, error) {
	t, err := r.ReadByte()
	if err != nil {
		return Frame{}, err
	}
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return Frame{}, unexpected(err)
	}
	if size > MaxFrameSize {
		return Frame{}, fmt.Errorf("%w: %d bytes", errors.ErrFrameTooLarge, size)
	}
	payload := make([]byte, size)
	if _, err = io.ReadFull(r, payload); err != nil {
		return Frame{}, unexpected(err)
	}
	return Frame{Type: FrameType(t), Payload: payload}, nil
}

// unexpected turns a clean EOF in the middle of a frame into io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

package protocol

import (
	"care-chat/domain"
	"care-chat/errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the Message record.
const (
	fieldID         protowire.Number = 1
	fieldSenderID   protowire.Number = 2
	fieldSenderName protowire.Number = 3
	fieldReceiverID protowire.Number = 4
	fieldContent    protowire.Number = 5
	fieldTimestamp  protowire.Number = 6
)

func MessageFrame(m domain.Message) Frame {
	return Frame{Type: FrameMessage, Payload: EncodeMessage(m)}
}

// EncodeMessage serializes m as a protobuf-compatible record.
// The same bytes are used on the wire and as the stored value.
func EncodeMessage(m domain.Message) []byte {
	var b []byte
	if m.ID != uuid.Nil {
		b = appendString(b, fieldID, m.ID.String())
	}
	b = appendString(b, fieldSenderID, m.SenderID)
	b = appendString(b, fieldSenderName, m.SenderName)
	b = appendString(b, fieldReceiverID, m.ReceiverID)
	b = appendString(b, fieldContent, m.Content)
	if !m.Timestamp.IsZero() {
		b = protowire.AppendTag(b, fieldTimestamp, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.Timestamp.UnixNano()))
	}
	return b
}

// DecodeMessage parses a record produced by EncodeMessage. Unknown fields are skipped.
func DecodeMessage(b []byte) (domain.Message, error) {
	var m domain.Message
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return domain.Message{}, malformed(protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldTimestamp && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return domain.Message{}, malformed(protowire.ParseError(n))
			}
			m.Timestamp = time.Unix(0, int64(v)).UTC()
			b = b[n:]
		case num >= fieldID && num <= fieldContent && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return domain.Message{}, malformed(protowire.ParseError(n))
			}
			if err := assign(&m, num, v); err != nil {
				return domain.Message{}, err
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return domain.Message{}, malformed(protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return m, nil
}

func assign(m *domain.Message, num protowire.Number, v string) error {
	switch num {
	case fieldID:
		id, err := uuid.Parse(v)
		if err != nil {
			return malformed(err)
		}
		m.ID = id
	case fieldSenderID:
		m.SenderID = v
	case fieldSenderName:
		m.SenderName = v
	case fieldReceiverID:
		m.ReceiverID = v
	case fieldContent:
		m.Content = v
	}
	return nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", errors.ErrMalformedFrame, err)
}

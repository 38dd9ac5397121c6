package protocol

import (
	"care-chat/domain"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the History record.
const (
	fieldPeerID  protowire.Number = 1
	fieldMessage protowire.Number = 2
)

// History is the payload of a history frame. A request only carries PeerID.
type History struct {
	PeerID   string
	Messages []domain.Message
}

// HistoryRequestFrame asks for the conversation between the session user and peerID.
func HistoryRequestFrame(peerID string) Frame {
	return Frame{Type: FrameHistory, Payload: appendString(nil, fieldPeerID, peerID)}
}

// HistoryFrame answers a request with the conversation in insertion order.
// The oldest messages are left out when the whole conversation does not fit in one frame.
func HistoryFrame(peerID string, messages []domain.Message) Frame {
	records := make([][]byte, len(messages))
	for i, m := range messages {
		records[i] = EncodeMessage(m)
	}

	b := appendString(nil, fieldPeerID, peerID)
	size, first := len(b), len(records)
	for first > 0 {
		n := protowire.SizeTag(fieldMessage) + protowire.SizeBytes(len(records[first-1]))
		if size+n > MaxFrameSize {
			break
		}
		size += n
		first--
	}
	for _, record := range records[first:] {
		b = protowire.AppendTag(b, fieldMessage, protowire.BytesType)
		b = protowire.AppendBytes(b, record)
	}
	return Frame{Type: FrameHistory, Payload: b}
}

// DecodeHistory parses a history request or reply. Unknown fields are skipped.
func DecodeHistory(b []byte) (History, error) {
	var h History
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return History{}, malformed(protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldPeerID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return History{}, malformed(protowire.ParseError(n))
			}
			h.PeerID = v
			b = b[n:]
		case num == fieldMessage && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return History{}, malformed(protowire.ParseError(n))
			}
			message, err := DecodeMessage(v)
			if err != nil {
				return History{}, err
			}
			h.Messages = append(h.Messages, message)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return History{}, malformed(protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return h, nil
}

package protocol

import (
	"bufio"
	"bytes"
	"care-chat/domain"
	"care-chat/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestHistoryRequest_Carries_Peer_Only(t *testing.T) {
	req := require.New(t)

	history, err := DecodeHistory(HistoryRequestFrame("doc1").Payload)

	req.NoError(err)
	req.Equal("doc1", history.PeerID)
	req.Empty(history.Messages)
}

func TestHistoryFrame_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)
	first := domain.NewMessage("pat1", "Pat", "doc1", "Hello")
	second := domain.NewMessage("doc1", "Dr. Smith", "pat1", "Hi")

	// Given a reply written to the wire
	var buf bytes.Buffer
	req.NoError(WriteFrame(&buf, HistoryFrame("doc1", []domain.Message{first, second})))

	// When it is read back
	frame, err := ReadFrame(bufio.NewReader(&buf))
	req.NoError(err)
	req.Equal(FrameHistory, frame.Type)
	history, err := DecodeHistory(frame.Payload)

	// Then both messages come back oldest first
	req.NoError(err)
	req.Equal("doc1", history.PeerID)
	req.Len(history.Messages, 2)
	req.Equal(first.ID, history.Messages[0].ID)
	req.Equal("Hello", history.Messages[0].Content)
	req.Equal(second.ID, history.Messages[1].ID)
	req.Equal("Dr. Smith", history.Messages[1].SenderName)
}

func TestHistoryFrame_Drops_Oldest_Messages_Beyond_Frame_Size(t *testing.T) {
	req := require.New(t)
	large := strings.Repeat("x", 400_000)
	var messages []domain.Message
	for i := 0; i < 4; i++ {
		messages = append(messages, domain.NewMessage("pat1", "Pat", "doc1", large))
	}

	frame := HistoryFrame("doc1", messages)

	req.LessOrEqual(len(frame.Payload), MaxFrameSize)
	history, err := DecodeHistory(frame.Payload)
	req.NoError(err)
	req.Len(history.Messages, 2)
	req.Equal(messages[2].ID, history.Messages[0].ID)
	req.Equal(messages[3].ID, history.Messages[1].ID)
}

func TestDecodeHistory_Rejects_Malformed_Records(t *testing.T) {
	req := require.New(t)

	// An embedded message that is not a valid record
	raw := protowire.AppendTag(nil, 2, protowire.BytesType)
	raw = protowire.AppendBytes(raw, []byte{0xff, 0xff, 0xff})

	_, err := DecodeHistory(raw)
	req.ErrorIs(err, errors.ErrMalformedFrame)
}

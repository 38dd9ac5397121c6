// Package domain contains core concepts of the chat system.
// This file defines Message records and related rules.
// Messages are immutable once built and validated by the domain.
package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const MaxContentLength = 4096

var validate = validator.New()

// Message represents an immutable chat record exchanged between two users.
type Message struct {
	ID         uuid.UUID
	SenderID   string `validate:"required,max=128"`
	SenderName string `validate:"max=256"`
	ReceiverID string `validate:"required,max=128,nefield=SenderID"`
	Content    string `validate:"required,max=4096"`
	Timestamp  time.Time
}

// NewMessage stamps a new message with a fresh ID and the current time.
func NewMessage(senderID, senderName, receiverID, content string) Message {
	return Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		SenderName: senderName,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}
}

func (m Message) Validate() error {
	return validate.Struct(m)
}

// Key returns the conversation this message belongs to.
func (m Message) Key() ConversationKey {
	return NewConversationKey(m.SenderID, m.ReceiverID)
}

// WithSenderName returns a copy carrying the given display name.
func (m Message) WithSenderName(name string) Message {
	m.SenderName = name
	return m
}

// Normalized fills the ID and timestamp when a client left them empty.
func (m Message) Normalized() Message {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	return m
}

func (m Message) String() string {
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp.Local().Format(time.DateTime), m.SenderName, m.Content)
}

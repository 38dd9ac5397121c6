package domain

import "sync"

// ConversationKey identifies a two-party conversation regardless of argument order.
// The smaller identifier is always stored in A.
type ConversationKey struct {
	A string
	B string
}

func NewConversationKey(x, y string) ConversationKey {
	if y < x {
		x, y = y, x
	}
	return ConversationKey{A: x, B: y}
}

// Involves reports whether userID is one of the two participants.
func (k ConversationKey) Involves(userID string) bool {
	return k.A == userID || k.B == userID
}

// Other returns the counterpart of userID in the conversation.
func (k ConversationKey) Other(userID string) string {
	if k.A == userID {
		return k.B
	}
	return k.A
}

func (k ConversationKey) String() string {
	return k.A + "<->" + k.B
}

// History is the append-only log of one conversation.
// Insertion order is chronological and is preserved on replay.
type History struct {
	mu       sync.RWMutex
	Key      ConversationKey
	messages []Message
}

func NewHistory(key ConversationKey, messages ...Message) *History {
	return &History{Key: key, messages: messages}
}

func (h *History) Append(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, message)
}

// Messages returns a copy of the stored sequence.
func (h *History) Messages() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messages)
}

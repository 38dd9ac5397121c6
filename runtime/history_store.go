package runtime

import (
	"care-chat/contract"
	"care-chat/domain"
	"care-chat/errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

var _ contract.IHistoryStore = (*HistoryStore)(nil)

// HistoryStore owns the in-memory view of every conversation.
// Every mutation holds mu across the durable write, so two saves never overlap.
type HistoryStore struct {
	mu        sync.Mutex
	log       *slog.Logger
	gateway   contract.IPersistenceGateway
	histories map[domain.ConversationKey]*domain.History
}

func NewHistoryStore(log *slog.Logger, gateway contract.IPersistenceGateway) *HistoryStore {
	return &HistoryStore{
		log:       log,
		gateway:   gateway,
		histories: make(map[domain.ConversationKey]*domain.History),
	}
}

// Load replaces the in-memory view with what the gateway replays.
func (s *HistoryStore) Load() error {
	histories, err := s.gateway.LoadAll()
	if err != nil {
		return fmt.Errorf("loading histories: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histories = lo.SliceToMap(histories, func(h *domain.History) (domain.ConversationKey, *domain.History) {
		return h.Key, h
	})
	s.log.Info("Chat histories loaded", "count", len(histories))
	return nil
}

// Lookup returns the history shared by a and b, creating and persisting an empty one if needed.
// Lookup(a, b) and Lookup(b, a) return the same instance.
func (s *HistoryStore) Lookup(a, b string) (*domain.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(domain.NewConversationKey(a, b))
}

// Append durably records message, then exposes it in memory.
func (s *HistoryStore) Append(message domain.Message) (*domain.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.lookup(message.Key())
	if err != nil {
		return nil, err
	}
	if err = s.gateway.Append(history, message); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	history.Append(message)
	return history, nil
}

func (s *HistoryStore) lookup(key domain.ConversationKey) (*domain.History, error) {
	if history, ok := s.histories[key]; ok {
		return history, nil
	}
	if err := s.gateway.CreateConversation(key); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	history := domain.NewHistory(key)
	s.histories[key] = history
	return history, nil
}

// Conversation returns the messages shared by a and b, oldest first.
// Unlike Lookup it never creates a conversation.
func (s *HistoryStore) Conversation(a, b string) []domain.Message {
	s.mu.Lock()
	history, ok := s.histories[domain.NewConversationKey(a, b)]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return history.Messages()
}

func (s *HistoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.histories)
}

func (s *HistoryStore) ClearForUser(userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.gateway.DeleteForUser(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	for key := range s.histories {
		if key.Involves(userID) {
			delete(s.histories, key)
		}
	}
	s.log.Info("Chat histories cleared", "user_id", userID, "count", count)
	return count, nil
}

func (s *HistoryStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gateway.DeleteAll(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	s.histories = make(map[domain.ConversationKey]*domain.History)
	s.log.Info("All chat histories cleared")
	return nil
}

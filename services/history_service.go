package services

import (
	"care-chat/contract"
	"care-chat/domain"
	"care-chat/errors"
	"fmt"
	"log/slog"
)

// HistoryService is the administrative surface over stored conversations.
type HistoryService struct {
	log   *slog.Logger
	store contract.IHistoryStore
}

func NewHistoryService(log *slog.Logger, store contract.IHistoryStore) *HistoryService {
	return &HistoryService{log: log, store: store}
}

// Conversation returns the messages exchanged between a and b in insertion order.
// Reading never creates the conversation.
func (s *HistoryService) Conversation(a, b string) ([]domain.Message, error) {
	if a == "" || b == "" {
		return nil, fmt.Errorf("%w: both participants are required", errors.ErrInvalidHistory)
	}
	return s.store.Conversation(a, b), nil
}

func (s *HistoryService) ClearForUser(userID string) (int, error) {
	count, err := s.store.ClearForUser(userID)
	if err != nil {
		s.log.Error("Unable to clear chat histories", "user_id", userID, "error", err)
		return 0, err
	}
	return count, nil
}

func (s *HistoryService) ClearAll() error {
	if err := s.store.ClearAll(); err != nil {
		s.log.Error("Unable to clear chat histories", "error", err)
		return err
	}
	return nil
}

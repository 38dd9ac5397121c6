package services

import (
	"care-chat/domain"
	"care-chat/errors"
	"care-chat/mocks"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIHistoryStore(ctrl)
	svc := NewHistoryService(slog.New(slog.NewTextHandler(io.Discard, nil)), store)

	t.Run("conversation returns messages in insertion order", func(t *testing.T) {
		req := require.New(t)
		first := domain.NewMessage("patient1", "John Doe", "doctor1", "Hello")
		second := domain.NewMessage("doctor1", "Dr. Smith", "patient1", "Hi")
		store.EXPECT().Lookup(gomock.Any(), gomock.Any()).Times(0)
		store.EXPECT().Conversation("doctor1", "patient1").Return([]domain.Message{first, second})

		messages, err := svc.Conversation("doctor1", "patient1")

		req.NoError(err)
		req.Len(messages, 2)
		req.Equal("Hello", messages[0].Content)
		req.Equal("Hi", messages[1].Content)
	})

	t.Run("conversation requires both participants", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().Conversation(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Conversation("", "")
		req.ErrorIs(err, errors.ErrInvalidHistory)

		_, err = svc.Conversation("doctor1", "")
		req.ErrorIs(err, errors.ErrInvalidHistory)
	})

	t.Run("clear for user reports the removed conversations", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().ClearForUser("patient1").Return(2, nil)

		count, err := svc.ClearForUser("patient1")

		req.NoError(err)
		req.Equal(2, count)
	})

	t.Run("clear failures propagate", func(t *testing.T) {
		req := require.New(t)
		store.EXPECT().ClearForUser("patient1").Return(0, errors.ErrPersistence)
		store.EXPECT().ClearAll().Return(errors.ErrPersistence)

		_, err := svc.ClearForUser("patient1")
		req.ErrorIs(err, errors.ErrPersistence)
		req.ErrorIs(svc.ClearAll(), errors.ErrPersistence)
	})
}

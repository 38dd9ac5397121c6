package repositories

import (
	"care-chat/contract"
	"care-chat/domain"
	"care-chat/protocol"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const (
	conversationPrefix = "conv:"
	messagePrefix      = "msg:"
	sequenceKey        = "seq:msg"
	sequenceBandwidth  = 1000
)

var _ contract.IPersistenceGateway = (*HistoryRepository)(nil)

// HistoryRepository is an append-only message log in BadgerDB.
//
// Layout:
//   - "conv:{conversation}:" marks that a conversation exists, even when empty.
//   - "msg:{conversation}:{seq}" holds one protowire-encoded message.
//
// The 20-digit zero-padded sequence comes from a single badger.Sequence so that
// a prefix scan replays messages in insertion order. The DB must be opened with
// SyncWrites for Append to be durable when it returns.
type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
	seq *badger.Sequence
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) (*HistoryRepository, error) {
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("message sequence: %w", err)
	}
	return &HistoryRepository{db: db, log: log, seq: seq}, nil
}

// Close releases the leased sequence range. It must run before the DB is closed.
func (r *HistoryRepository) Close() error {
	return r.seq.Release()
}

func (r *HistoryRepository) CreateConversation(key domain.ConversationKey) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(conversationKey(key), []byte(key.String()))
	})
}

// Append stores message at the tail of the history's log.
func (r *HistoryRepository) Append(history *domain.History, message domain.Message) error {
	n, err := r.seq.Next()
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(conversationKey(history.Key), []byte(history.Key.String())); err != nil {
			return err
		}
		return txn.Set(messageKey(history.Key, n), protocol.EncodeMessage(message))
	})
}

// LoadAll replays every conversation. Calling it twice yields the same result.
func (r *HistoryRepository) LoadAll() ([]*domain.History, error) {
	var histories []*domain.History
	err := r.db.View(func(txn *badger.Txn) error {
		keys, err := r.conversations(txn)
		if err != nil {
			return err
		}
		for _, key := range keys {
			messages, err := r.messages(txn, key)
			if err != nil {
				return err
			}
			histories = append(histories, domain.NewHistory(key, messages...))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return histories, nil
}

// Load replays a single conversation; an unknown conversation yields no messages.
func (r *HistoryRepository) Load(key domain.ConversationKey) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		messages, err = r.messages(txn, key)
		return err
	})
	return messages, err
}

// DeleteForUser drops every conversation userID takes part in and returns how many were removed.
func (r *HistoryRepository) DeleteForUser(userID string) (int, error) {
	var keys []domain.ConversationKey
	err := r.db.View(func(txn *badger.Txn) error {
		all, err := r.conversations(txn)
		keys = lo.Filter(all, func(k domain.ConversationKey, _ int) bool { return k.Involves(userID) })
		return err
	})
	if err != nil || len(keys) == 0 {
		return 0, err
	}
	prefixes := make([][]byte, 0, 2*len(keys))
	for _, key := range keys {
		prefixes = append(prefixes, conversationKey(key), messageKeyPrefix(key))
	}
	if err = r.db.DropPrefix(prefixes...); err != nil {
		return 0, err
	}
	r.log.Info("Conversations deleted", "user_id", userID, "count", len(keys))
	return len(keys), nil
}

func (r *HistoryRepository) DeleteAll() error {
	if err := r.db.DropPrefix([]byte(conversationPrefix), []byte(messagePrefix)); err != nil {
		return err
	}
	r.log.Info("All conversations deleted")
	return nil
}

func (r *HistoryRepository) conversations(txn *badger.Txn) ([]domain.ConversationKey, error) {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	var keys []domain.ConversationKey
	prefix := []byte(conversationPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		id := strings.TrimSuffix(strings.TrimPrefix(string(it.Item().Key()), conversationPrefix), ":")
		key, err := parseConversationID(id)
		if err != nil {
			r.log.Warn("Skipping unreadable conversation key", "key", id, "error", err)
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *HistoryRepository) messages(txn *badger.Txn, key domain.ConversationKey) ([]domain.Message, error) {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	var messages []domain.Message
	prefix := messageKeyPrefix(key)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		err := it.Item().Value(func(val []byte) error {
			message, err := protocol.DecodeMessage(val)
			if err != nil {
				return err
			}
			messages = append(messages, message)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("conversation %s: %w", key, err)
		}
	}
	return messages, nil
}

func conversationKey(key domain.ConversationKey) []byte {
	return []byte(conversationPrefix + conversationID(key) + ":")
}

func messageKeyPrefix(key domain.ConversationKey) []byte {
	return []byte(messagePrefix + conversationID(key) + ":")
}

func messageKey(key domain.ConversationKey, n uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", messagePrefix, conversationID(key), n))
}

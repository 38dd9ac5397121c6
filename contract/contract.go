//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"care-chat/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IPersistenceGateway durably records conversations.
// Append must not return before the write is on disk.
type IPersistenceGateway interface {
	CreateConversation(key domain.ConversationKey) error
	Append(history *domain.History, message domain.Message) error
	LoadAll() ([]*domain.History, error)
	DeleteForUser(userID string) (int, error)
	DeleteAll() error
}

type IHistoryStore interface {
	Lookup(a, b string) (*domain.History, error)
	// Conversation reads the messages shared by a and b without creating anything.
	Conversation(a, b string) []domain.Message
	Append(message domain.Message) (*domain.History, error)
	ClearForUser(userID string) (int, error)
	ClearAll() error
}

// ISession is the router's view of a connected user.
// Every method funnels through the session's single writer.
type ISession interface {
	UserID() string
	Deliver(message domain.Message) error
	Acknowledge() error
	Reject(reason error) error
	Close()
}

type ISessionRegistry interface {
	Register(userID string, session ISession) ISession
	Lookup(userID string) (ISession, bool)
	Deregister(userID string, session ISession) bool
	CloseAll()
	Len() int
}

type IRouter interface {
	Process(ctx context.Context, sender ISession, message domain.Message) error
	History(requesterID, peerID string) ([]domain.Message, error)
}

// IAuthenticator turns the handshake string into a user ID.
type IAuthenticator interface {
	Authenticate(handshake string) (string, error)
}

type IDirectory interface {
	GetUser(id string) (domain.User, error)
	Snapshot() (domain.Directory, error)
}

type IContactPolicy interface {
	CanMessage(senderID, receiverID string) (bool, error)
	DisplayName(userID string) string
}

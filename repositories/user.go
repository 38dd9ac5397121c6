//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"care-chat/contract"
	"care-chat/domain"
	"care-chat/errors"
	goerrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	userPrefix     = "user:"
	usernamePrefix = "idx:username:"
)

type IUserRepository interface {
	CreateUser(user domain.User) error
	GetUser(id string) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	ListUsers() ([]domain.User, error)
	Snapshot() (domain.Directory, error)
}

var (
	_ IUserRepository     = (*UserRepository)(nil)
	_ contract.IDirectory = (*UserRepository)(nil)
)

// UserRepository is the Badger-backed directory of users and care relationships.
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser persists a validated user together with its username index.
func (u UserRepository) CreateUser(user domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid user %q: %w", user.ID, err)
	}
	return u.db.Update(func(txn *badger.Txn) error {
		key := []byte(userPrefix + user.ID)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		index := []byte(usernamePrefix + user.Username)
		if _, err := txn.Get(index); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(key, encodeUser(user)); err != nil {
			return err
		}
		return txn.Set(index, []byte(user.ID))
	})
}

func (u UserRepository) GetUser(id string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, id)
		return err
	})
	return user, err
}

func (u UserRepository) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(usernamePrefix + username))
		if err != nil {
			return notFound(err)
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		user, err = getUser(txn, string(id))
		return err
	})
	return user, err
}

// ListUsers returns every user ordered by ID.
func (u UserRepository) ListUsers() ([]domain.User, error) {
	var users []domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(userPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				user, err := decodeUser(val)
				if err != nil {
					return err
				}
				users = append(users, user)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return users, err
}

// Snapshot freezes the current directory for contact resolution.
func (u UserRepository) Snapshot() (domain.Directory, error) {
	users, err := u.ListUsers()
	if err != nil {
		return domain.Directory{}, err
	}
	return domain.NewDirectory(users...), nil
}

func getUser(txn *badger.Txn, id string) (domain.User, error) {
	item, err := txn.Get([]byte(userPrefix + id))
	if err != nil {
		return domain.User{}, notFound(err)
	}
	var user domain.User
	err = item.Value(func(val []byte) error {
		user, err = decodeUser(val)
		return err
	})
	return user, err
}

func notFound(err error) error {
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrUnknownUser
	}
	return err
}

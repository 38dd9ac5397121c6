package services

import (
	"care-chat/contract"
	"care-chat/domain"
	"care-chat/errors"
	goerrors "errors"
	"log/slog"
)

var _ contract.IContactPolicy = (*ContactService)(nil)

// ContactService answers who may talk to whom and what a user is called.
// Relationships are read from the directory on every call.
type ContactService struct {
	log       *slog.Logger
	directory contract.IDirectory
	enforce   bool
}

func NewContactService(log *slog.Logger, directory contract.IDirectory, enforce bool) *ContactService {
	return &ContactService{log: log, directory: directory, enforce: enforce}
}

// Contacts lists the users userID may exchange messages with.
func (s *ContactService) Contacts(userID string) ([]domain.User, error) {
	directory, err := s.directory.Snapshot()
	if err != nil {
		return nil, err
	}
	user, ok := directory.Get(userID)
	if !ok {
		return nil, errors.ErrUnknownUser
	}
	return domain.ResolveContacts(directory, user), nil
}

// CanMessage always allows when enforcement is off.
func (s *ContactService) CanMessage(senderID, receiverID string) (bool, error) {
	if !s.enforce {
		return true, nil
	}
	directory, err := s.directory.Snapshot()
	if err != nil {
		return false, err
	}
	return domain.CanMessage(directory, senderID, receiverID), nil
}

func (s *ContactService) DisplayName(userID string) string {
	user, err := s.directory.GetUser(userID)
	if err != nil {
		if !goerrors.Is(err, errors.ErrUnknownUser) {
			s.log.Warn("Directory lookup failed", "user_id", userID, "error", err)
		}
		return domain.UnknownUserName
	}
	return user.Name
}

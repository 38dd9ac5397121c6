package services

import (
	"care-chat/contract"
	"care-chat/errors"
	"fmt"
)

var _ contract.IAuthenticator = (*DirectoryAuthenticator)(nil)

// DirectoryAuthenticator only admits identities present in the directory.
type DirectoryAuthenticator struct {
	inner     contract.IAuthenticator
	directory contract.IDirectory
}

func NewDirectoryAuthenticator(inner contract.IAuthenticator, directory contract.IDirectory) *DirectoryAuthenticator {
	return &DirectoryAuthenticator{inner: inner, directory: directory}
}

func (a *DirectoryAuthenticator) Authenticate(handshake string) (string, error) {
	userID, err := a.inner.Authenticate(handshake)
	if err != nil {
		return "", err
	}
	if _, err = a.directory.GetUser(userID); err != nil {
		return "", fmt.Errorf("%w: %s", errors.ErrUnknownUser, userID)
	}
	return userID, nil
}

package auth

import (
	"care-chat/contract"
	"care-chat/errors"
	"fmt"
	"strings"
)

var (
	_ contract.IAuthenticator = PlainAuthenticator{}
	_ contract.IAuthenticator = TokenAuthenticator{}
)

// PlainAuthenticator trusts the handshake string as the user ID.
type PlainAuthenticator struct{}

func NewPlainAuthenticator() PlainAuthenticator {
	return PlainAuthenticator{}
}

func (PlainAuthenticator) Authenticate(handshake string) (string, error) {
	id := strings.TrimSpace(handshake)
	if err := validateIdentifier(id); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}
	return id, nil
}

// TokenAuthenticator expects a signed token and returns its user_id claim.
type TokenAuthenticator struct {
	issuer TokenIssuer
}

func NewTokenAuthenticator(issuer TokenIssuer) TokenAuthenticator {
	return TokenAuthenticator{issuer: issuer}
}

func (a TokenAuthenticator) Authenticate(handshake string) (string, error) {
	claims, err := a.issuer.Validate(strings.TrimSpace(handshake))
	if err != nil {
		return "", err
	}
	if err = validateIdentifier(claims.UserID); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	return claims.UserID, nil
}

package services

import (
	"care-chat/auth"
	"care-chat/domain"
	"care-chat/errors"
	"care-chat/repositories"
	"fmt"
)

type IAuthService interface {
	Login(username, password string) (Token, error)
	Register(user domain.User, password string) error
}

type AuthService struct {
	userRepository repositories.IUserRepository
	issuer         auth.TokenIssuer
}

// Token is a signed handshake credential.
type Token string

func (t Token) String() string {
	return string(t)
}

func NewAuthService(repo repositories.IUserRepository, issuer auth.TokenIssuer) IAuthService {
	return &AuthService{userRepository: repo, issuer: issuer}
}

// Register stores user with an argon2id hash of password.
func (s *AuthService) Register(user domain.User, password string) error {
	if err := auth.ValidatePassword(password); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}
	user.PasswordHash = hashedPassword

	return s.userRepository.CreateUser(user)
}

// Login checks credentials and issues a token usable as a handshake.
// Unknown usernames and bad passwords are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (Token, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{Username: username, Password: password}); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	user, err := s.userRepository.GetUserByUsername(username)
	if err != nil || user.PasswordHash == "" {
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.issuer.Generate(user)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

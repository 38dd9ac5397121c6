package services

import (
	"care-chat/auth"
	"care-chat/domain"
	"care-chat/errors"
	"care-chat/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func doctor() domain.User {
	return domain.User{ID: "doctor1", Name: "Dr. Smith", Username: "dsmith", Role: domain.RoleDoctor}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, auth.NewTokenIssuer("test-secret", time.Hour))

	t.Run("should register with a hashed password when input is valid", func(t *testing.T) {
		req := require.New(t)
		password := "ComplexPass123!"

		var stored domain.User
		mockRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user domain.User) error {
				stored = user
				return nil
			}).
			Times(1)

		req.NoError(svc.Register(doctor(), password))
		req.Equal("doctor1", stored.ID)
		req.NotEqual(password, stored.PasswordHash)

		match, err := auth.ComparePassword(password, stored.PasswordHash)
		req.NoError(err)
		req.True(match)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().CreateUser(gomock.Any()).Times(0)

		err := svc.Register(doctor(), "simple")

		req.ErrorIs(err, errors.ErrInvalidPassword)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser(gomock.Any()).
			Return(errors.ErrUserAlreadyExists).
			Times(1)

		err := svc.Register(doctor(), "ComplexPass123!")

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, issuer)

	password := "ComplexPass123!"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := doctor()
	user.PasswordHash = hash

	t.Run("should issue a token accepted by the token authenticator", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByUsername("dsmith").Return(user, nil).Times(1)

		token, err := svc.Login("dsmith", password)
		req.NoError(err)
		req.NotEmpty(token.String())

		userID, err := auth.NewTokenAuthenticator(issuer).Authenticate(token.String())
		req.NoError(err)
		req.Equal("doctor1", userID)
	})

	t.Run("should fail with wrong password", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByUsername("dsmith").Return(user, nil).Times(1)

		token, err := svc.Login("dsmith", "WrongPassword1!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
		req.Empty(token)
	})

	t.Run("should fail with the same error for unknown users", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByUsername("ghost").Return(domain.User{}, errors.ErrUnknownUser).Times(1)

		_, err := svc.Login("ghost", password)

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should fail for accounts without a password", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByUsername("dsmith").Return(doctor(), nil).Times(1)

		_, err := svc.Login("dsmith", password)

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should not hit the repository for empty input", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByUsername(gomock.Any()).Times(0)

		_, err := svc.Login("", "")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}

package auth

import (
	"care-chat/domain"
	"care-chat/errors"
	goerrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "Ward-7-Night-Shift!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("wrong-password", hash)
	req.NoError(err)
	req.False(match)

	_, err = ComparePassword(password, "not-a-hash")
	req.Error(err)
}

func TestPasswordValidation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid password", "ComplexPass123!", false},
		{"Too short", "Short1!", true},
		{"Missing digit", "NoDigitPassword!", true},
		{"Missing special char", "NoSpecialChar123", true},
		{"Missing uppercase", "nouppercase123!", true},
		{"Too long", strings.Repeat("Aa1!", 19), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	req := require.New(t)
	req.NoError(ValidateLogin(LoginRequest{Username: "dr.house", Password: "secret"}))
	req.Error(ValidateLogin(LoginRequest{Username: "", Password: "secret"}))
	req.Error(ValidateLogin(LoginRequest{Username: "dr.house", Password: ""}))
}

func TestPlainAuthenticator(t *testing.T) {
	tests := []struct {
		name      string
		handshake string
		want      string
		wantErr   bool
	}{
		{"Plain id", "patient1", "patient1", false},
		{"Surrounding whitespace trimmed", "  doctor1\n", "doctor1", false},
		{"Empty", "", "", true},
		{"Blank", "   ", "", true},
		{"Control character", "pat\x00ient", "", true},
		{"Too long", strings.Repeat("x", MaxIdentifierLength+1), "", true},
	}

	authenticator := NewPlainAuthenticator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := authenticator.Authenticate(tt.handshake)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTokenAuthenticator(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("unit-test-secret", time.Hour)
	user := domain.User{ID: "doctor1", Role: domain.RoleDoctor}

	// Given a freshly issued token
	token, err := issuer.Generate(user)
	req.NoError(err)

	// When it is presented as the handshake
	userID, err := NewTokenAuthenticator(issuer).Authenticate(token)

	// Then the user_id claim becomes the session identity
	req.NoError(err)
	req.Equal("doctor1", userID)

	claims, err := issuer.Validate(token)
	req.NoError(err)
	req.Equal(domain.RoleDoctor, claims.Role)
	req.Equal("care-chat", claims.Issuer)
}

func TestTokenAuthenticator_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret", time.Hour)
	user := domain.User{ID: "patient1", Role: domain.RolePatient}

	foreign, err := NewTokenIssuer("another-secret", time.Hour).Generate(user)
	require.NoError(t, err)
	expired, err := NewTokenIssuer("unit-test-secret", -time.Minute).Generate(user)
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "patient1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "patient1"},
		{"Wrong secret", foreign},
		{"Expired", expired},
		{"Unsigned", unsigned},
	}

	authenticator := NewTokenAuthenticator(issuer)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authenticator.Authenticate(tt.token)
			require.True(t, goerrors.Is(err, errors.ErrInvalidToken))
		})
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"loveuadAdmin/internal/config"
)

func newTestAuthService(t *testing.T, password string) *authService {
	t.Helper()
	bcryptCost = bcrypt.MinCost

	svc, err := NewAuthService(&config.Config{
		AdminPassword:   password,
		SecretKey:       "test-secret-key",
		SessionDuration: time.Hour,
	})
	require.NoError(t, err)
	return svc.(*authService)
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService(&config.Config{AdminPassword: "pw"})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		password   string
		wantErr    error
	}{
		{name: "correct password", configured: "s3cret", password: "s3cret"},
		{name: "wrong password", configured: "s3cret", password: "guess", wantErr: ErrUnauthorized},
		{name: "empty password", configured: "s3cret", password: "", wantErr: ErrUnauthorized},
		{name: "no password configured", configured: "", password: "anything", wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(t, tt.configured)
			svc.now = func() time.Time { return fixedNow }

			token, expiresAt, err := svc.Login(context.Background(), tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, fixedNow.Add(time.Hour), expiresAt)
		})
	}
}

func TestValidateToken(t *testing.T) {
	svc := newTestAuthService(t, "s3cret")

	t.Run("round trip", func(t *testing.T) {
		token, _, err := svc.Login(context.Background(), "s3cret")
		require.NoError(t, err)

		id, err := svc.ValidateToken(token)

		require.NoError(t, err)
		assert.True(t, id.Admin)
		assert.NotEmpty(t, id.SessionID)
	})

	t.Run("expired", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := svc.Login(context.Background(), "s3cret")
		require.NoError(t, err)
		svc.now = time.Now

		id, err := svc.ValidateToken(token)

		assert.Error(t, err)
		assert.False(t, id.Admin)
	})

	t.Run("wrong key", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: adminSubject, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-key"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: adminSubject, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret-key"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("other subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "reader", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
		require.NoError(t, err)

		id, err := svc.ValidateToken(token)
		assert.Error(t, err)
		assert.False(t, id.Admin)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"loveuadAdmin/internal/config"
	"loveuadAdmin/internal/session"
)

const adminSubject = "admin"

// bcryptCost is lowered in tests.
var bcryptCost = bcrypt.DefaultCost

type AuthService interface {
	Login(ctx context.Context, password string) (string, time.Time, error)
	ValidateToken(tokenString string) (session.Identity, error)
}

type authService struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthService hashes the configured admin password once. With no password
// configured every login is rejected.
func NewAuthService(cfg *config.Config) (AuthService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("ADMIN_SECRET_KEY is required")
	}

	var hash []byte
	if cfg.AdminPassword != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	}

	return &authService{
		passwordHash: hash,
		secret:       []byte(cfg.SecretKey),
		ttl:          cfg.SessionDuration,
		now:          time.Now,
	}, nil
}

func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if len(s.passwordHash) == 0 || password == "" {
		return "", time.Time{}, ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrUnauthorized
	}

	return s.generateToken()
}

func (s *authService) generateToken() (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

func (s *authService) ValidateToken(tokenString string) (session.Identity, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return session.Anonymous(), fmt.Errorf("invalid session token: %w", err)
	}

	if !token.Valid || claims.Subject != adminSubject {
		return session.Anonymous(), errors.New("invalid session token")
	}

	id := session.Identity{Admin: true, SessionID: claims.ID}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}

	return id, nil
}

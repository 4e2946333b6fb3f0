package application

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"filebox/internal/domain/repository"
	"filebox/internal/infrastructure/session"
	"filebox/pkg/helpers"
)

// SessionStore is the token -> user id mapping with expiry. Absence of a
// token means invalid or expired; the store's TTL does the enforcement.
type SessionStore interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Del(ctx context.Context, token string) error
}

// AuthService issues and revokes opaque session tokens.
type AuthService struct {
	Users      repository.UserRepository
	Sessions   SessionStore
	SessionTTL time.Duration
	Logger     *logrus.Logger
}

func NewAuthService(users repository.UserRepository, sessions SessionStore, ttl time.Duration, logger *logrus.Logger) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{Users: users, Sessions: sessions, SessionTTL: ttl, Logger: logger}
}

// parseBasicAuth extracts email and password from a standard
// "Basic base64(email:password)" Authorization header value.
func parseBasicAuth(header string) (email, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", false
	}
	email, password, found := strings.Cut(string(decoded), ":")
	if !found || email == "" || password == "" {
		return "", "", false
	}
	return email, password, true
}

// SignIn validates Basic credentials and stores a fresh random token in the
// session store for SessionTTL. The token is the only session handle; it
// dies with the store key.
func (s *AuthService) SignIn(ctx context.Context, authHeader string) (string, error) {
	email, password, ok := parseBasicAuth(authHeader)
	if !ok {
		return "", ErrUnauthorized
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("fetch user: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrUnauthorized
	}

	token := uuid.NewString()
	if err := s.Sessions.Set(ctx, token, u.ID, s.SessionTTL); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("store session failed")
		}
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// SignOut deletes the token's session. A second sign-out with the same
// token fails with Unauthorized because the key is already gone.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if _, err := s.ResolveIdentity(ctx, token); err != nil {
		return err
	}
	if err := s.Sessions.Del(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ResolveIdentity maps a bearer token to the user id that signed in.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	userID, err := s.Sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("resolve token: %w", err)
	}
	return userID, nil
}

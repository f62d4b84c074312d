package session

import (
	"context"
	"encoding/json"

	"hospital-dashboard/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Persisted session keys. The token is written under both token keys for
// compatibility with older clients; either one means "authenticated".
const (
	TokenKey       = "token"
	LegacyTokenKey = "authToken"
	UserKey        = "user"
)

// Session reads and writes the persisted session state.
type Session struct {
	storage Storage
	log     *logrus.Logger
}

func New(storage Storage, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{storage: storage, log: log}
}

// Token returns the stored auth token, or "" when there is none.
func (s *Session) Token(ctx context.Context) string {
	for _, key := range []string{TokenKey, LegacyTokenKey} {
		v, ok, err := s.storage.Get(ctx, key)
		if err != nil {
			s.log.Warnf("Failed to read session token: %+v", err)
			continue
		}
		if ok && v != "" {
			return v
		}
	}
	return ""
}

// User returns the cached user, or nil when none is stored or it cannot be decoded.
func (s *Session) User(ctx context.Context) *entity.User {
	raw, ok, err := s.storage.Get(ctx, UserKey)
	if err != nil {
		s.log.Warnf("Failed to read session user: %+v", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warnf("Failed to decode session user: %+v", err)
		return nil
	}
	return &user
}

func (s *Session) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// Save persists token and user.
func (s *Session) Save(ctx context.Context, token string, user *entity.User) error {
	if err := s.storage.Set(ctx, TokenKey, token); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, LegacyTokenKey, token); err != nil {
		return err
	}
	if user == nil {
		return s.storage.Remove(ctx, UserKey)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, UserKey, string(raw))
}

// Clear removes every session key. Clearing an empty session is not an error.
func (s *Session) Clear(ctx context.Context) error {
	return s.storage.Remove(ctx, TokenKey, LegacyTokenKey, UserKey)
}

package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/tracesnap/internal/logging"
	"github.com/dmitrijs2005/tracesnap/internal/models"
	"github.com/dmitrijs2005/tracesnap/internal/repositories/kvstore"
)

// SessionService is the process-wide record of the authenticated user. It
// holds a value copy of the user (users are immutable, so the copy never goes
// stale), persisted under its own durable key so a restart resumes the
// session.
type SessionService struct {
	store   kvstore.Repository
	log     logging.Logger
	current *models.User
}

// NewSessionService restores the persisted session, if any.
func NewSessionService(ctx context.Context, store kvstore.Repository, log logging.Logger) (*SessionService, error) {
	s := &SessionService{store: store, log: log.With("component", "session")}

	data, err := store.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if data != nil {
		var u models.User
		if err := json.Unmarshal(data, &u); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		s.current = &u
	}

	return s, nil
}

// Login records user as the active session and persists it.
func (s *SessionService) Login(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, KeyCurrentUser, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.current = &user
	s.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

// Logout clears the active session and removes its durable key.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	s.current = nil
	s.log.Info(ctx, "logged out")
	return nil
}

// Current returns a copy of the active user, or nil when logged out.
func (s *SessionService) Current() *models.User {
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

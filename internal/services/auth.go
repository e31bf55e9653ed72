package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/tracesnap/internal/common"
	"github.com/dmitrijs2005/tracesnap/internal/logging"
	"github.com/dmitrijs2005/tracesnap/internal/models"
	"github.com/dmitrijs2005/tracesnap/internal/repositories/kvstore"
)

// AuthService is the directory of registered users.
//
// Contract:
//   - Register: append a new user, persist the whole directory, return it.
//     Fails with common.ErrorDuplicateUsername on a case-sensitive exact match.
//   - Authenticate: return the user matching both username and password
//     exactly, or common.ErrorInvalidCredentials.
//   - All: snapshot of the directory for read-only consumers.
//
// Users are never edited or deleted, so the in-memory mirror only grows.
type AuthService struct {
	store kvstore.Repository
	log   logging.Logger
	users []models.User
}

// NewAuthService loads the persisted directory and returns the service.
// A missing key means an empty directory, not an error.
func NewAuthService(ctx context.Context, store kvstore.Repository, log logging.Logger) (*AuthService, error) {
	s := &AuthService{store: store, log: log.With("component", "auth")}

	data, err := store.Get(ctx, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &s.users); err != nil {
			return nil, fmt.Errorf("failed to decode users: %w", err)
		}
	}

	return s, nil
}

// Register validates and appends a new user, then persists the full
// directory. Nothing is written when validation or the duplicate check fails.
func (s *AuthService) Register(ctx context.Context, username, password, phone string) (models.User, error) {
	user := models.NewUser(username, password, phone)

	if err := models.Validate(user); err != nil {
		return models.User{}, err
	}

	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, fmt.Errorf("register %q: %w", username, common.ErrorDuplicateUsername)
		}
	}

	next := append(slices.Clone(s.users), user)
	if err := s.persist(ctx, next); err != nil {
		return models.User{}, err
	}
	s.users = next

	s.log.Info(ctx, "user registered", "username", username)
	return user, nil
}

// Authenticate returns the user whose username and password both match
// exactly. Comparison is verbatim; this app deliberately stores plaintext.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	s.log.Warn(ctx, "authentication failed", "username", username)
	return models.User{}, common.ErrorInvalidCredentials
}

// All returns a copy of the directory.
func (s *AuthService) All() []models.User {
	return slices.Clone(s.users)
}

func (s *AuthService) persist(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := s.store.Set(ctx, KeyUsers, data); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}

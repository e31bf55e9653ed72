package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/tracesnap/internal/logging"
	"github.com/dmitrijs2005/tracesnap/internal/models"
	"github.com/dmitrijs2005/tracesnap/internal/repositories/kvstore"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuth(t *testing.T, store kvstore.Repository) *AuthService {
	t.Helper()
	s, err := NewAuthService(context.Background(), store, testLogger())
	require.NoError(t, err)
	return s
}

func newSession(t *testing.T, store kvstore.Repository) *SessionService {
	t.Helper()
	s, err := NewSessionService(context.Background(), store, testLogger())
	require.NoError(t, err)
	return s
}

func newPosts(t *testing.T, store kvstore.Repository) *PostService {
	t.Helper()
	s, err := NewPostService(context.Background(), store, testLogger())
	require.NoError(t, err)
	return s
}

// fixedClock pins a PostService to a constant time, forcing same-tick id
// assignment.
func fixedClock(s *PostService, at time.Time) {
	s.now = func() time.Time { return at }
}

func mustCreate(t *testing.T, s *PostService, author models.User, p CreateParams) models.Post {
	t.Helper()
	post, err := s.Create(context.Background(), author, p)
	require.NoError(t, err)
	return post
}

package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/tracesnap/internal/common"
	"github.com/dmitrijs2005/tracesnap/internal/repositories/kvstore"
	"github.com/stretchr/testify/require"
)

func TestRegister_DuplicateUsername(t *testing.T) {
	store := kvstore.NewMemoryRepository()
	auth := newAuth(t, store)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "secret", "")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "alice", "other", "")
	require.ErrorIs(t, err, common.ErrorDuplicateUsername)

	// Directory unchanged after the failed attempt.
	require.Len(t, auth.All(), 1)
	require.Equal(t, "secret", auth.All()[0].Password)
}

func TestRegister_CaseSensitiveUsernames(t *testing.T) {
	store := kvstore.NewMemoryRepository()
	auth := newAuth(t, store)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "secret", "")
	require.NoError(t, err)

	// "Alice" is a different user: matching is exact.
	_, err = auth.Register(ctx, "Alice", "secret", "")
	require.NoError(t, err)
	require.Len(t, auth.All(), 2)
}

func TestRegister_ValidationAbortsBeforeWrite(t *testing.T) {
	store := kvstore.NewMemoryRepository()
	auth := newAuth(t, store)
	ctx := context.Background()

	_, err := auth.Register(ctx, "", "secret", "")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = auth.Register(ctx, "alice", "", "")
	require.ErrorIs(t, err, common.ErrorValidation)

	v, err := store.Get(ctx, KeyUsers)
	require.NoError(t, err)
	require.Nil(t, v, "nothing may be persisted on validation failure")
}

func TestAuthenticate(t *testing.T) {
	store := kvstore.NewMemoryRepository()
	auth := newAuth(t, store)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "secret", "555-0100")
	require.NoError(t, err)

	_, err = auth.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrorInvalidCredentials)

	_, err = auth.Authenticate(ctx, "nobody", "secret")
	require.ErrorIs(t, err, common.ErrorInvalidCredentials)

	u, err := auth.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.NotNil(t, u.Phone)
	require.Equal(t, "555-0100", *u.Phone)
}

func TestAuthService_PersistsWholeDirectory(t *testing.T) {
	store := kvstore.NewMemoryRepository()
	auth := newAuth(t, store)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "secret", "")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "bob", "hunter2", "")
	require.NoError(t, err)

	// A fresh service over the same store sees both users.
	reloaded := newAuth(t, store)
	require.Len(t, reloaded.All(), 2)

	u, err := reloaded.Authenticate(ctx, "bob", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "bob", u.Username)
}

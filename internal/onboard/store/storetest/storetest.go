// Package storetest holds the conformance suite every store driver runs.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, migrated store.
type Factory func(t *testing.T) store.Store

// Run executes the full suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("CreateAndGetUser", func(t *testing.T) { testCreateAndGetUser(t, newStore(t)) })
	t.Run("DuplicateEmail", func(t *testing.T) { testDuplicateEmail(t, newStore(t)) })
	t.Run("ConcurrentCreate", func(t *testing.T) { testConcurrentCreate(t, newStore(t)) })
	t.Run("UpdateUser", func(t *testing.T) { testUpdateUser(t, newStore(t)) })
	t.Run("Sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("DeleteExpiredSessions", func(t *testing.T) { testDeleteExpiredSessions(t, newStore(t)) })
	t.Run("Ping", func(t *testing.T) { require.NoError(t, newStore(t).Ping(context.Background())) })
}

func newUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     "fox",
		Email:        email,
		PasswordHash: "$argon2id$dummy",
	}
}

func testCreateAndGetUser(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := newUser("fox@example.com")

	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "fox", got.Username)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Empty(t, got.AvatarURL)
	require.Empty(t, got.Preferences)
	require.False(t, got.CreatedAt.IsZero())

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testDuplicateEmail(t *testing.T, s store.Store) {
	ctx := context.Background()
	first := newUser("fox@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, first))

	second := newUser("fox@example.com")
	second.Username = "impostor"
	second.PasswordHash = "$argon2id$other"
	require.ErrorIs(t, s.Users().CreateUser(ctx, second), store.ErrAlreadyExists)

	got, err := s.Users().GetUserByEmail(ctx, "fox@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, "fox", got.Username)
	require.Equal(t, first.PasswordHash, got.PasswordHash)
}

func testConcurrentCreate(t *testing.T, s store.Store) {
	ctx := context.Background()
	const workers = 8

	var (
		wg      sync.WaitGroup
		created atomic.Int32
		dupes   atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := newUser("race@example.com")
			u.Username = fmt.Sprintf("racer-%d", i)
			switch err := s.Users().CreateUser(ctx, u); err {
			case nil:
				created.Add(1)
			case store.ErrAlreadyExists:
				dupes.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	require.EqualValues(t, 1, created.Load())
	require.EqualValues(t, workers-1, dupes.Load())
}

func testUpdateUser(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := newUser("fox@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	require.NoError(t, s.Users().UpdateAvatar(ctx, u.Email, "fox.png"))
	require.NoError(t, s.Users().UpdatePreferences(ctx, u.Email, domain.NewPreferences("dark", "news")))

	got, err := s.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, "fox.png", got.AvatarURL)
	require.Equal(t, domain.Preferences{"dark", "news"}, got.Preferences)

	require.ErrorIs(t, s.Users().UpdateAvatar(ctx, "nobody@example.com", "x.png"), store.ErrNotFound)
	require.ErrorIs(t, s.Users().UpdatePreferences(ctx, "nobody@example.com", nil), store.ErrNotFound)
}

func testSessions(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := newUser("fox@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	now := time.Now().UTC().Truncate(time.Millisecond)
	sess := domain.NewSession("sess-1", u, now, time.Hour)
	require.NoError(t, s.Sessions().CreateSession(ctx, sess))
	require.ErrorIs(t, s.Sessions().CreateSession(ctx, sess), store.ErrAlreadyExists)

	got, err := s.Sessions().GetSession(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.UserID)
	require.Equal(t, u.Email, got.Email)
	require.True(t, now.Equal(got.CreatedAt))
	require.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

	got.AvatarURL = "fox.png"
	got.Preferences = domain.NewPreferences("dark")
	require.NoError(t, s.Sessions().UpdateSession(ctx, got))

	got, err = s.Sessions().GetSession(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, "fox.png", got.AvatarURL)
	require.Equal(t, domain.Preferences{"dark"}, got.Preferences)

	missing := got
	missing.ID = "sess-missing"
	require.ErrorIs(t, s.Sessions().UpdateSession(ctx, missing), store.ErrNotFound)

	require.NoError(t, s.Sessions().DeleteSession(ctx, "sess-1"))
	require.NoError(t, s.Sessions().DeleteSession(ctx, "sess-1"))

	_, err = s.Sessions().GetSession(ctx, "sess-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testDeleteExpiredSessions(t *testing.T, s store.Store) {
	ctx := context.Background()
	u := newUser("fox@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	now := time.Now().UTC()
	require.NoError(t, s.Sessions().CreateSession(ctx, domain.NewSession("old", u, now.Add(-2*time.Hour), time.Hour)))
	require.NoError(t, s.Sessions().CreateSession(ctx, domain.NewSession("edge", u, now.Add(-time.Hour), time.Hour)))
	require.NoError(t, s.Sessions().CreateSession(ctx, domain.NewSession("fresh", u, now, time.Hour)))

	n, err := s.Sessions().DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	_, err = s.Sessions().GetSession(ctx, "fresh")
	require.NoError(t, err)
	_, err = s.Sessions().GetSession(ctx, "old")
	require.ErrorIs(t, err, store.ErrNotFound)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/memory"
	"github.com/aussiebroadwan/onboard/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newSessions(t *testing.T) (*SessionManager, store.Store, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	codec, err := sessionx.NewCodec([]byte("0123456789abcdef0123456789abcdef"), "onboard-test", sessionx.WithClock(clock.Now))
	require.NoError(t, err)

	st := memory.NewStore()
	return &SessionManager{Store: st, Codec: codec, TTL: time.Hour, Now: clock.Now}, st, clock
}

func testUser() domain.User {
	return domain.User{
		ID:           "01HZZZZZZZZZZZZZZZZZZZZZZZ",
		Username:     "fox",
		Email:        "fox@example.com",
		PasswordHash: "$argon2id$secret",
		AvatarURL:    "old.png",
		Preferences:  domain.NewPreferences("dark"),
	}
}

func TestSessionEstablishAndCurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessions, _, clock := newSessions(t)

	sess, token, err := sessions.Establish(ctx, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "fox", sess.Username)
	require.Equal(t, "fox@example.com", sess.Email)
	require.Equal(t, "old.png", sess.AvatarURL)
	require.Equal(t, domain.Preferences{"dark"}, sess.Preferences)
	require.Equal(t, clock.Now().Add(time.Hour), sess.ExpiresAt)

	got, err := sessions.Current(ctx, token)
	require.NoError(t, err)
	require.Equal(t, sess.ID, got.ID)

	// The token carries nothing but ids.
	require.NotContains(t, token, "argon2")
}

func TestSessionCurrentRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		sessions, _, _ := newSessions(t)
		_, err := sessions.Current(ctx, "")
		require.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("forged token", func(t *testing.T) {
		sessions, _, _ := newSessions(t)
		other, err := sessionx.NewCodec([]byte("ffffffffffffffffffffffffffffffff"), "onboard-test")
		require.NoError(t, err)

		token, err := other.Issue("u", "s", time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = sessions.Current(ctx, token)
		require.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("expired", func(t *testing.T) {
		sessions, _, clock := newSessions(t)
		_, token, err := sessions.Establish(ctx, testUser())
		require.NoError(t, err)

		clock.Advance(time.Hour)
		_, err = sessions.Current(ctx, token)
		require.ErrorIs(t, err, ErrNoActiveSession)
	})

	t.Run("cleared", func(t *testing.T) {
		sessions, _, _ := newSessions(t)
		sess, token, err := sessions.Establish(ctx, testUser())
		require.NoError(t, err)

		require.NoError(t, sessions.Clear(ctx, sess.ID))
		require.NoError(t, sessions.Clear(ctx, sess.ID))

		_, err = sessions.Current(ctx, token)
		require.ErrorIs(t, err, ErrNoActiveSession)
	})
}

func TestSessionLive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessions, _, clock := newSessions(t)

	sess, _, err := sessions.Establish(ctx, testUser())
	require.NoError(t, err)
	require.NoError(t, sessions.Live(ctx, sess.ID))

	require.ErrorIs(t, sessions.Live(ctx, "missing"), ErrNoActiveSession)

	clock.Advance(2 * time.Hour)
	require.ErrorIs(t, sessions.Live(ctx, sess.ID), ErrNoActiveSession)
}

func TestSessionUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessions, st, clock := newSessions(t)

	sess, token, err := sessions.Establish(ctx, testUser())
	require.NoError(t, err)

	avatar := "fox.png"
	updated, err := sessions.Update(ctx, sess.ID, domain.SessionPatch{AvatarURL: &avatar})
	require.NoError(t, err)
	require.Equal(t, "fox.png", updated.AvatarURL)
	require.Equal(t, domain.Preferences{"dark"}, updated.Preferences)

	prefs := domain.NewPreferences("news", "music")
	_, err = sessions.Update(ctx, sess.ID, domain.SessionPatch{Preferences: &prefs})
	require.NoError(t, err)

	got, err := sessions.Current(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "fox.png", got.AvatarURL)
	require.Equal(t, domain.Preferences{"news", "music"}, got.Preferences)
	require.Equal(t, sess.ExpiresAt, got.ExpiresAt)

	_, err = sessions.Update(ctx, "missing", domain.SessionPatch{AvatarURL: &avatar})
	require.ErrorIs(t, err, ErrNoActiveSession)

	clock.Advance(2 * time.Hour)
	_, err = sessions.Update(ctx, sess.ID, domain.SessionPatch{AvatarURL: &avatar})
	require.ErrorIs(t, err, ErrNoActiveSession)

	_, err = st.Sessions().GetSession(ctx, sess.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionSnapshotSurvivesStoreChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessions, st, _ := newSessions(t)
	accounts := &AccountService{Store: st}

	u, err := accounts.Register(ctx, "fox", "fox@example.com", "hunter2")
	require.NoError(t, err)

	first, _, err := sessions.Establish(ctx, u)
	require.NoError(t, err)

	require.NoError(t, accounts.SetAvatar(ctx, u.Email, "fox.png"))

	stale, err := st.Sessions().GetSession(ctx, first.ID)
	require.NoError(t, err)
	require.Empty(t, stale.AvatarURL)

	u, err = accounts.Authenticate(ctx, "fox@example.com", "hunter2")
	require.NoError(t, err)

	fresh, _, err := sessions.Establish(ctx, u)
	require.NoError(t, err)
	require.Equal(t, "fox.png", fresh.AvatarURL)
}

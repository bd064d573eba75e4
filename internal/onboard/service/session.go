package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/sessionx"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
	"github.com/google/uuid"
)

// DefaultSessionTTL is used when SessionManager.TTL is zero.
const DefaultSessionTTL = 24 * time.Hour

// SessionManager creates, resolves, patches and clears visitor sessions.
// Session rows live in the Store; the visitor only holds a signed token
// naming the row.
type SessionManager struct {
	Store store.Store
	Codec *sessionx.Codec
	TTL   time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func (m *SessionManager) now() time.Time {
	if m.Now != nil {
		return m.Now().UTC()
	}
	return time.Now().UTC()
}

func (m *SessionManager) ttl() time.Duration {
	if m.TTL <= 0 {
		return DefaultSessionTTL
	}
	return m.TTL
}

// Establish starts a session for u and returns it with its signed token.
// The password hash is never copied.
func (m *SessionManager) Establish(ctx context.Context, u domain.User) (domain.Session, string, error) {
	sess := domain.NewSession(uuid.NewString(), u, m.now(), m.ttl())

	if err := m.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.Session{}, "", fmt.Errorf("create session: %w", err)
	}

	token, err := m.Codec.Issue(u.ID, sess.ID, sess.ExpiresAt)
	if err != nil {
		_ = m.Store.Sessions().DeleteSession(ctx, sess.ID)
		return domain.Session{}, "", fmt.Errorf("issue session token: %w", err)
	}

	slogx.FromContext(ctx).Debug("session established", "session_id", sess.ID, "user_id", u.ID)
	return sess, token, nil
}

// Current resolves token to its live session. Any failure (empty, forged,
// expired, revoked) yields ErrNoActiveSession.
func (m *SessionManager) Current(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, ErrNoActiveSession
	}

	log := slogx.FromContext(ctx)

	claims, err := m.Codec.Parse(token)
	if err != nil {
		log.Debug("rejected session token", "error", err)
		return domain.Session{}, ErrNoActiveSession
	}

	sess, err := m.load(ctx, claims.SID)
	if err != nil {
		return domain.Session{}, err
	}
	if sess.UserID != claims.Subject {
		log.Warn("session token subject mismatch", "session_id", sess.ID)
		return domain.Session{}, ErrNoActiveSession
	}
	return sess, nil
}

// Live reports whether sessionID still names an unexpired session.
func (m *SessionManager) Live(ctx context.Context, sessionID string) error {
	_, err := m.load(ctx, sessionID)
	return err
}

// Update patches the session in place and returns the new snapshot.
func (m *SessionManager) Update(ctx context.Context, sessionID string, patch domain.SessionPatch) (domain.Session, error) {
	sess, err := m.load(ctx, sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	sess = patch.Apply(sess)
	if err := m.Store.Sessions().UpdateSession(ctx, sess); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrNoActiveSession
		}
		return domain.Session{}, fmt.Errorf("update session: %w", err)
	}
	return sess, nil
}

// Clear destroys the session. Clearing an unknown session is a no-op.
func (m *SessionManager) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := m.Store.Sessions().DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// load fetches a non-expired session row, dropping it if it has expired.
func (m *SessionManager) load(ctx context.Context, sessionID string) (domain.Session, error) {
	sess, err := m.Store.Sessions().GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, ErrNoActiveSession
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}

	if sess.Expired(m.now()) {
		_ = m.Store.Sessions().DeleteSession(ctx, sess.ID)
		return domain.Session{}, ErrNoActiveSession
	}
	return sess, nil
}

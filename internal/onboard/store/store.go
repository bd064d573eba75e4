package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (memory, sqlite)
// implement this and expose sub-repositories per concern.
type Store interface {
	Users() Users
	Sessions() Sessions

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user. Returns ErrAlreadyExists when the email
	// is taken; the check and the insert are atomic.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail looks up by normalised email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpdateAvatar sets avatar_url and bumps updated_at.
	UpdateAvatar(ctx context.Context, email, avatarURL string) error

	// UpdatePreferences replaces the preference set and bumps updated_at.
	UpdatePreferences(ctx context.Context, email string, prefs domain.Preferences) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns the session by id, expired or not.
	GetSession(ctx context.Context, id string) (domain.Session, error)

	// UpdateSession overwrites the mutable fields (avatar, preferences).
	UpdateSession(ctx context.Context, s domain.Session) error

	// DeleteSession removes a session. Deleting a missing session is not an error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes every session that expired at or before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

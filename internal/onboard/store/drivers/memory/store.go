// Package memory is an in-process Store. Data lives for the lifetime of the
// process only.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User // by email
	userIDs  map[string]string      // id -> email
	sessions map[string]domain.Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		userIDs:  make(map[string]string),
		sessions: make(map[string]domain.Session),
		now:      time.Now,
	}
}

func (s *Store) Users() store.Users       { return &usersRepo{s: s} }
func (s *Store) Sessions() store.Sessions { return &sessionsRepo{s: s} }

// ApplyMigrations is a no-op for the memory driver.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func cloneUser(u domain.User) domain.User {
	u.Preferences = u.Preferences.Clone()
	return u
}

func cloneSession(sess domain.Session) domain.Session {
	sess.Preferences = sess.Preferences.Clone()
	return sess
}

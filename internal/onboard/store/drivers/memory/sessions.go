package memory

import (
	"context"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type sessionsRepo struct {
	s *Store
}

func (r *sessionsRepo) CreateSession(ctx context.Context, sess domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sessions[sess.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[id]
	if !ok {
		return domain.Session{}, store.ErrNotFound
	}
	return cloneSession(sess), nil
}

func (r *sessionsRepo) UpdateSession(ctx context.Context, sess domain.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.sessions[sess.ID]
	if !ok {
		return store.ErrNotFound
	}
	cur.AvatarURL = sess.AvatarURL
	cur.Preferences = sess.Preferences.Clone()
	r.s.sessions[sess.ID] = cur
	return nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, id)
	return nil
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, sess := range r.s.sessions {
		if sess.Expired(now) {
			delete(r.s.sessions, id)
			n++
		}
	}
	return n, nil
}

package memory

import (
	"context"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type usersRepo struct {
	s *Store
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.Email]; ok {
		return store.ErrAlreadyExists
	}
	if _, ok := r.s.userIDs[u.ID]; ok {
		return store.ErrAlreadyExists
	}

	now := r.s.now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	r.s.users[u.Email] = cloneUser(u)
	r.s.userIDs[u.ID] = u.Email
	return nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[email]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email, ok := r.s.userIDs[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return cloneUser(r.s.users[email]), nil
}

func (r *usersRepo) UpdateAvatar(ctx context.Context, email, avatarURL string) error {
	return r.update(email, func(u *domain.User) { u.AvatarURL = avatarURL })
}

func (r *usersRepo) UpdatePreferences(ctx context.Context, email string, prefs domain.Preferences) error {
	return r.update(email, func(u *domain.User) { u.Preferences = prefs.Clone() })
}

func (r *usersRepo) update(email string, fn func(*domain.User)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[email]
	if !ok {
		return store.ErrNotFound
	}
	fn(&u)
	u.UpdatedAt = r.s.now().UTC()
	r.s.users[email] = u
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/cryptox"
	"github.com/aussiebroadwan/onboard/pkg/idx"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

// AccountService owns the account records keyed by email.
type AccountService struct {
	Store store.Store

	dummyOnce sync.Once
	dummyHash string
	dummyErr  error
}

// Register creates a new account. Username and email are trimmed and the
// email is lowercased; the password is kept as given.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = domain.NormalizeEmail(email)
	if username == "" || email == "" || password == "" {
		return domain.User{}, ErrMissingField
	}

	// Skip hashing when the email is obviously taken. CreateUser is still
	// the authority on uniqueness.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Preferences:  domain.Preferences{},
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("account registered", "user_id", u.ID)
	return s.Store.Users().GetUserByEmail(ctx, email)
}

// Authenticate checks the password for email. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		// Burn a verification so unknown emails take as long as known ones.
		if hash, herr := s.dummy(); herr == nil {
			_ = cryptox.VerifyPassword(password, hash)
		}
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}

	return u, nil
}

// SetAvatar records the chosen avatar. A missing record means the session
// outlived its account and is reported as ErrSessionStoreMismatch.
func (s *AccountService) SetAvatar(ctx context.Context, email, avatarURL string) error {
	avatarURL = strings.TrimSpace(avatarURL)
	if avatarURL == "" {
		return ErrMissingField
	}

	if err := s.Store.Users().UpdateAvatar(ctx, domain.NormalizeEmail(email), avatarURL); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionStoreMismatch
		}
		return fmt.Errorf("update avatar: %w", err)
	}
	return nil
}

// SetPreferences replaces the preference set. A missing record is reported
// as ErrSessionStoreMismatch; callers may choose to tolerate it.
func (s *AccountService) SetPreferences(ctx context.Context, email string, prefs domain.Preferences) error {
	if err := s.Store.Users().UpdatePreferences(ctx, domain.NormalizeEmail(email), domain.NewPreferences(prefs...)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionStoreMismatch
		}
		return fmt.Errorf("update preferences: %w", err)
	}
	return nil
}

// GetUser fetches the account for email.
func (s *AccountService) GetUser(ctx context.Context, email string) (domain.User, error) {
	return s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
}

func (s *AccountService) dummy() (string, error) {
	s.dummyOnce.Do(func() {
		s.dummyHash, s.dummyErr = cryptox.HashPassword("onboard-timing-equaliser")
	})
	return s.dummyHash, s.dummyErr
}

package domain

import "time"

// Session is the server-side half of a login. It snapshots the public
// fields of the User at establish time and is only patched by avatar and
// preference updates.
type Session struct {
	ID          string // uuid
	UserID      string
	Username    string
	Email       string
	AvatarURL   string
	Preferences Preferences
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionPatch describes a partial session update. Nil fields are left as is.
type SessionPatch struct {
	AvatarURL   *string
	Preferences *Preferences
}

// Apply returns a copy of s with the patch applied.
func (p SessionPatch) Apply(s Session) Session {
	if p.AvatarURL != nil {
		s.AvatarURL = *p.AvatarURL
	}
	if p.Preferences != nil {
		s.Preferences = p.Preferences.Clone()
	}
	return s
}

// NewSession builds the session snapshot for u.
func NewSession(id string, u User, now time.Time, ttl time.Duration) Session {
	return Session{
		ID:          id,
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		AvatarURL:   u.AvatarURL,
		Preferences: u.Preferences.Clone(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

package domain

import (
	"strings"
	"time"
)

// User is an account record keyed by Email.
type User struct {
	ID           string // ULID
	Username     string
	Email        string // normalised with NormalizeEmail
	PasswordHash string // argon2id PHC string
	AvatarURL    string // empty until an avatar is chosen
	Preferences  Preferences
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail returns the canonical form used as the account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

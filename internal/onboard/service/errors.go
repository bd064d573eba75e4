package service

import "errors"

var (
	ErrMissingField         = errors.New("missing_field")
	ErrDuplicateEmail       = errors.New("duplicate_email")
	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrNoActiveSession      = errors.New("no_active_session")
	ErrSessionStoreMismatch = errors.New("session_store_mismatch")
)

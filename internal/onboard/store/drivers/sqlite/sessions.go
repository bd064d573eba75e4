package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
)

const (
	sessionColumns = `id, user_id, username, email, avatar_url, preferences, created_at, expires_at`

	createSessionQuery = `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	getSessionQuery = `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`

	updateSessionQuery = `UPDATE sessions SET avatar_url = ?, preferences = ? WHERE id = ?`

	deleteSessionQuery = `DELETE FROM sessions WHERE id = ?`

	deleteExpiredSessionsQuery = `DELETE FROM sessions WHERE expires_at <= ?`
)

type sessionsRepo struct {
	db *sql.DB
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	prefs, err := encodePreferences(s.Preferences)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, createSessionQuery,
		s.ID,
		s.UserID,
		s.Username,
		s.Email,
		mapStringNull(s.AvatarURL),
		prefs,
		encodeTime(s.CreatedAt),
		encodeTime(s.ExpiresAt),
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	var (
		s       domain.Session
		avatar  sql.NullString
		prefs   string
		created int64
		expires int64
	)
	err := r.db.QueryRowContext(ctx, getSessionQuery, id).
		Scan(&s.ID, &s.UserID, &s.Username, &s.Email, &avatar, &prefs, &created, &expires)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}

	p, err := decodePreferences(prefs)
	if err != nil {
		return domain.Session{}, err
	}

	s.AvatarURL = mapNullString(avatar)
	s.Preferences = p
	s.CreatedAt = decodeTime(created)
	s.ExpiresAt = decodeTime(expires)
	return s, nil
}

func (r *sessionsRepo) UpdateSession(ctx context.Context, s domain.Session) error {
	prefs, err := encodePreferences(s.Preferences)
	if err != nil {
		return err
	}
	return execOne(ctx, r.db, updateSessionQuery, mapStringNull(s.AvatarURL), prefs, s.ID)
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, deleteSessionQuery, id)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredSessionsQuery, encodeTime(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

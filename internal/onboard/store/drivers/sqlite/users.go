package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

const (
	userColumns = `id, username, email, password_hash, avatar_url, preferences, created_at, updated_at`

	createUserQuery = `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	getUserByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	getUserByIDQuery = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	updateUserAvatarQuery = `UPDATE users SET avatar_url = ?, updated_at = ? WHERE email = ?`

	updateUserPreferencesQuery = `UPDATE users SET preferences = ?, updated_at = ? WHERE email = ?`
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	prefs, err := encodePreferences(u.Preferences)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}

	_, err = r.db.ExecContext(ctx, createUserQuery,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		mapStringNull(u.AvatarURL),
		prefs,
		encodeTime(u.CreatedAt),
		encodeTime(now),
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByEmailQuery, email))
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByIDQuery, id))
}

func (r *usersRepo) UpdateAvatar(ctx context.Context, email, avatarURL string) error {
	return execOne(ctx, r.db, updateUserAvatarQuery, mapStringNull(avatarURL), encodeTime(time.Now()), email)
}

func (r *usersRepo) UpdatePreferences(ctx context.Context, email string, prefs domain.Preferences) error {
	raw, err := encodePreferences(prefs)
	if err != nil {
		return err
	}
	return execOne(ctx, r.db, updateUserPreferencesQuery, raw, encodeTime(time.Now()), email)
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u       domain.User
		avatar  sql.NullString
		prefs   string
		created int64
		updated int64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &avatar, &prefs, &created, &updated); err != nil {
		return domain.User{}, mapNotFound(err)
	}

	p, err := decodePreferences(prefs)
	if err != nil {
		return domain.User{}, err
	}

	u.AvatarURL = mapNullString(avatar)
	u.Preferences = p
	u.CreatedAt = decodeTime(created)
	u.UpdatedAt = decodeTime(updated)
	return u, nil
}

// execOne runs an update and reports ErrNotFound when no row matched.
func execOne(ctx context.Context, db *sql.DB, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

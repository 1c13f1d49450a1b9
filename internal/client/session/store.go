// Package session persists the login session between CLI runs: the bearer
// token pair and the cached user id, in a small keyed sqlite store. It is
// the process-wide source of truth for identity; there is no reconciliation
// logic beyond overwrite-on-login and wipe-on-logout.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/abylaikhan/uniadvisor/internal/client/session/migrations"
	"github.com/abylaikhan/uniadvisor/internal/dbx"
)

// Store keys. Fixed names, mirrored by every client version.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
)

// Store is a sqlite-backed keyed store for session state. Reads and writes
// are atomic per call; the environment is effectively single-threaded so no
// further locking is needed.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("setting migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migrating session db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	return get(ctx, s.db, key)
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading state[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	return set(ctx, s.db, key, value)
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing state[%s]: %w", key, err)
	}
	return nil
}

// AccessToken returns the stored access token, or "" when logged out.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, keyAccessToken)
}

// RefreshToken returns the stored refresh token, or "".
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, keyRefreshToken)
}

// SetTokens stores a freshly issued token pair, replacing any previous one.
// Both keys land in one transaction so a crash cannot leave a mixed pair.
func (s *Store) SetTokens(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyAccessToken, access); err != nil {
			return err
		}
		return set(ctx, tx, keyRefreshToken, refresh)
	})
}

// Clear wipes the token pair and cached user id.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM state WHERE key IN (?, ?, ?)`,
			keyAccessToken, keyRefreshToken, keyUserID)
		if err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		return nil
	})
}

// SetUserID caches the logged-in user's id.
func (s *Store) SetUserID(ctx context.Context, id int) error {
	return s.set(ctx, keyUserID, strconv.Itoa(id))
}

// UserID returns the cached user id, or 0 when none is stored.
func (s *Store) UserID(ctx context.Context) (int, error) {
	v, err := s.get(ctx, keyUserID)
	if err != nil || v == "" {
		return 0, err
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing cached user id: %w", err)
	}
	return id, nil
}

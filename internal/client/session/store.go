// Package session persists the authenticated session (token and username)
// in a local sqlite database so other tooling can pick it up.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/todoterm/todoterm/internal/client/migrations"
	"github.com/todoterm/todoterm/internal/dbx"
)

// Storage keys. Other tools read these; do not rename.
const (
	KeyToken    = "todo_token"
	KeyUsername = "todo_username"
)

// Session is the locally persisted authentication state.
type Session struct {
	Token    string
	Username string
}

// Store is the durable session store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the local database at dsn and applies the
// embedded migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local db: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already opened and migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Save persists the token and username in a single transaction. Either both
// keys are written or neither is.
func (s *Store) Save(ctx context.Context, token, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUsername, username)
	})
}

// Current returns the stored session, or nil when no token is stored.
func (s *Store) Current(ctx context.Context) (*Session, error) {
	repo := NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	username, _, err := repo.Get(ctx, KeyUsername)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, Username: username}, nil
}

// Clear removes the stored session, e.g. on logout.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUsername)
	})
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

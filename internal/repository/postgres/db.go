package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"invitationtracker/internal/adapters/database"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewHandle returns a lazily dialed handle for the Postgres database at dsn.
// The first Acquire opens the pool, pings it and applies pending migrations.
func NewHandle(dsn string) *database.Handle[*sql.DB] {
	return database.NewHandle(
		func(ctx context.Context) (*sql.DB, error) {
			return Open(ctx, dsn)
		},
		func(_ context.Context, db *sql.DB) error {
			return db.Close()
		},
	)
}

// Open connects to Postgres and brings the schema up to date.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := Migrate(dsn); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies all embedded migrations that have not run yet. It uses its
// own connection, which is closed on return.
func Migrate(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	mdb, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open postgres for migrations: %w", err)
	}
	drv, err := migratepg.WithInstance(mdb, &migratepg.Config{})
	if err != nil {
		mdb.Close()
		return fmt.Errorf("init migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", drv)
	if err != nil {
		mdb.Close()
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

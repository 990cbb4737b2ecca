package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kestrelworks/messagely/internal/domain"
	"github.com/kestrelworks/messagely/internal/repository/postgres/migrations"
)

// DB wraps a Postgres connection pool and hands out the repositories backed
// by it. The schema mirrors the SQLite backend; only the SQL dialect differs.
type DB struct {
	SqlDB *sql.DB
}

var _ domain.Database = (*DB)(nil)

// New opens a Postgres database via the pgx stdlib driver.
func New(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies any unapplied goose migrations from the embedded FS.
func (d *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.UpContext(ctx, d.SqlDB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close closes the underlying pool.
func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Users returns the Postgres-backed user repository.
func (d *DB) Users() domain.UserRepository {
	return NewUserRepository(d)
}

// Messages returns the Postgres-backed message repository.
func (d *DB) Messages() domain.MessageRepository {
	return NewMessageRepository(d)
}

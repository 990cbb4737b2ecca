package domain

import "context"

// Database defines lifecycle operations for a storage backend. Each
// implementation (SQLite, Postgres) owns its own migration files and
// strategy, so the whole backend stays swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}

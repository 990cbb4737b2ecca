package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/kestrelworks/messagely/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// insertMessage seeds a message row directly; the module itself never writes
// messages, the sending component does.
func insertMessage(t *testing.T, db *sqlite.DB, from, to, body string, sentAt time.Time) {
	t.Helper()
	_, err := db.SqlDB.ExecContext(context.Background(),
		`INSERT INTO messages (from_username, to_username, body, sent_at)
		 VALUES (?, ?, ?, ?)`,
		from, to, body, sentAt.UTC(),
	)
	if err != nil {
		t.Fatalf("insert message: %v", err)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// A second run must be a no-op, not a duplicate-table error.
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestNew_BadPath(t *testing.T) {
	_, err := sqlite.New(filepath.Join(t.TempDir(), "missing", "nested", "test.db"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/kestrelworks/messagely/internal/domain"
	"github.com/kestrelworks/messagely/internal/repository/sqlite"
)

func seedUsers(t *testing.T, db *sqlite.DB, usernames ...string) {
	t.Helper()
	repo := sqlite.NewUserRepository(db)
	for _, name := range usernames {
		if err := repo.Create(context.Background(), testUser(name)); err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
	}
}

func TestMessageRepository_SentBy(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedUsers(t, db, "alice", "bob")
	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertMessage(t, db, "alice", "bob", "hi", sent)

	messages, err := repo.SentBy(ctx, "alice")
	if err != nil {
		t.Fatalf("SentBy: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	msg := messages[0]
	if msg.Body != "hi" {
		t.Fatalf("expected body %q, got %q", "hi", msg.Body)
	}
	if !msg.SentAt.Equal(sent) {
		t.Fatalf("expected sent_at %v, got %v", sent, msg.SentAt)
	}
	if msg.ReadAt != nil {
		t.Fatalf("expected unread message, got read_at %v", *msg.ReadAt)
	}
	if msg.To.Username != "bob" {
		t.Fatalf("expected recipient bob, got %q", msg.To.Username)
	}
	if msg.To.FirstName == "" || msg.To.Phone == "" {
		t.Fatalf("expected recipient contact fields, got %+v", msg.To)
	}

	// The message belongs to alice's outbox only.
	other, err := repo.SentBy(ctx, "bob")
	if err != nil {
		t.Fatalf("SentBy bob: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no messages sent by bob, got %d", len(other))
	}
}

func TestMessageRepository_ReceivedBy(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedUsers(t, db, "alice", "bob")
	insertMessage(t, db, "alice", "bob", "hello there", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	messages, err := repo.ReceivedBy(ctx, "bob")
	if err != nil {
		t.Fatalf("ReceivedBy: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].From.Username != "alice" {
		t.Fatalf("expected sender alice, got %q", messages[0].From.Username)
	}

	other, err := repo.ReceivedBy(ctx, "alice")
	if err != nil {
		t.Fatalf("ReceivedBy alice: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no messages received by alice, got %d", len(other))
	}
}

func TestMessageRepository_ChronologicalOrder(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedUsers(t, db, "alice", "bob")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// Insert out of order; id breaks the tie for the pair at the same instant.
	insertMessage(t, db, "alice", "bob", "third", base.Add(2*time.Minute))
	insertMessage(t, db, "alice", "bob", "first", base)
	insertMessage(t, db, "alice", "bob", "second", base.Add(time.Minute))
	insertMessage(t, db, "alice", "bob", "fourth", base.Add(2*time.Minute))

	messages, err := repo.SentBy(ctx, "alice")
	if err != nil {
		t.Fatalf("SentBy: %v", err)
	}
	want := []string{"first", "second", "third", "fourth"}
	if len(messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(messages))
	}
	for i, body := range want {
		if messages[i].Body != body {
			t.Fatalf("expected %q at position %d, got %q", body, i, messages[i].Body)
		}
	}
}

func TestMessageRepository_ReadAt(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedUsers(t, db, "alice", "bob")
	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	read := sent.Add(5 * time.Minute)
	_, err := db.SqlDB.ExecContext(ctx,
		`INSERT INTO messages (from_username, to_username, body, sent_at, read_at)
		 VALUES (?, ?, ?, ?, ?)`,
		"alice", "bob", "seen", sent, read,
	)
	if err != nil {
		t.Fatalf("insert read message: %v", err)
	}

	messages, err := repo.ReceivedBy(ctx, "bob")
	if err != nil {
		t.Fatalf("ReceivedBy: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].ReadAt == nil {
		t.Fatal("expected read_at to be set")
	}
	if !messages[0].ReadAt.Equal(read) {
		t.Fatalf("expected read_at %v, got %v", read, *messages[0].ReadAt)
	}
}

func TestMessageRepository_MissingCounterpart(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedUsers(t, db, "alice")

	// A counterpart row can be gone while its messages remain; relax
	// enforcement to stage that state.
	if _, err := db.SqlDB.ExecContext(ctx, "PRAGMA foreign_keys=OFF"); err != nil {
		t.Fatalf("disable foreign keys: %v", err)
	}
	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertMessage(t, db, "alice", "ghost", "anyone there?", sent)
	insertMessage(t, db, "ghost", "alice", "boo", sent.Add(time.Minute))
	if _, err := db.SqlDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	// The message survives the missing recipient, with empty contact fields.
	messages, err := repo.SentBy(ctx, "alice")
	if err != nil {
		t.Fatalf("SentBy: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message despite missing recipient, got %d", len(messages))
	}
	if messages[0].Body != "anyone there?" {
		t.Fatalf("expected body %q, got %q", "anyone there?", messages[0].Body)
	}
	if messages[0].To != (domain.Contact{}) {
		t.Fatalf("expected empty contact for missing recipient, got %+v", messages[0].To)
	}

	// Same on the receiving side with a missing sender.
	received, err := repo.ReceivedBy(ctx, "alice")
	if err != nil {
		t.Fatalf("ReceivedBy: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("expected 1 message despite missing sender, got %d", len(received))
	}
	if received[0].From != (domain.Contact{}) {
		t.Fatalf("expected empty contact for missing sender, got %+v", received[0].From)
	}
}

func TestMessageRepository_NoMessages(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedUsers(t, db, "loner")

	sent, err := repo.SentBy(ctx, "loner")
	if err != nil {
		t.Fatalf("SentBy: %v", err)
	}
	if len(sent) != 0 {
		t.Fatalf("expected empty result, got %d messages", len(sent))
	}

	received, err := repo.ReceivedBy(ctx, "loner")
	if err != nil {
		t.Fatalf("ReceivedBy: %v", err)
	}
	if len(received) != 0 {
		t.Fatalf("expected empty result, got %d messages", len(received))
	}
}

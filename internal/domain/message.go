package domain

import (
	"context"
	"time"
)

// SentMessage is an outgoing message with the recipient's contact attached.
// ReadAt is nil while the message is unread.
type SentMessage struct {
	ID     int64
	Body   string
	SentAt time.Time
	ReadAt *time.Time
	To     Contact
}

// ReceivedMessage is an incoming message with the sender's contact attached.
type ReceivedMessage struct {
	ID     int64
	Body   string
	SentAt time.Time
	ReadAt *time.Time
	From   Contact
}

// MessageRepository defines the read-only message projections. This module
// never writes message rows; a sibling component inserts them.
type MessageRepository interface {
	// SentBy returns all messages sent by the given user, oldest first.
	SentBy(ctx context.Context, username string) ([]SentMessage, error)

	// ReceivedBy returns all messages addressed to the given user, oldest first.
	ReceivedBy(ctx context.Context, username string) ([]ReceivedMessage, error)
}

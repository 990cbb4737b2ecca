package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kestrelworks/messagely/internal/domain"
)

// MessageRepository implements domain.MessageRepository using Postgres.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new Postgres-backed MessageRepository.
func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{db: db.SqlDB}
}

func (r *MessageRepository) SentBy(ctx context.Context, username string) ([]domain.SentMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        u.username, u.first_name, u.last_name, u.phone
		 FROM messages AS m
		 LEFT JOIN users AS u ON m.to_username = u.username
		 WHERE m.from_username = $1
		 ORDER BY m.sent_at, m.id`, username)
	if err != nil {
		return nil, fmt.Errorf("query sent messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.SentMessage
	for rows.Next() {
		var msg domain.SentMessage
		var readAt sql.NullTime
		var cUsername, cFirst, cLast, cPhone sql.NullString
		if err := rows.Scan(&msg.ID, &msg.Body, &msg.SentAt, &readAt,
			&cUsername, &cFirst, &cLast, &cPhone); err != nil {
			return nil, fmt.Errorf("scan sent message: %w", err)
		}
		if readAt.Valid {
			t := readAt.Time
			msg.ReadAt = &t
		}
		msg.To = domain.Contact{
			Username:  cUsername.String,
			FirstName: cFirst.String,
			LastName:  cLast.String,
			Phone:     cPhone.String,
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) ReceivedBy(ctx context.Context, username string) ([]domain.ReceivedMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        u.username, u.first_name, u.last_name, u.phone
		 FROM messages AS m
		 LEFT JOIN users AS u ON m.from_username = u.username
		 WHERE m.to_username = $1
		 ORDER BY m.sent_at, m.id`, username)
	if err != nil {
		return nil, fmt.Errorf("query received messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.ReceivedMessage
	for rows.Next() {
		var msg domain.ReceivedMessage
		var readAt sql.NullTime
		var cUsername, cFirst, cLast, cPhone sql.NullString
		if err := rows.Scan(&msg.ID, &msg.Body, &msg.SentAt, &readAt,
			&cUsername, &cFirst, &cLast, &cPhone); err != nil {
			return nil, fmt.Errorf("scan received message: %w", err)
		}
		if readAt.Valid {
			t := readAt.Time
			msg.ReadAt = &t
		}
		msg.From = domain.Contact{
			Username:  cUsername.String,
			FirstName: cFirst.String,
			LastName:  cLast.String,
			Phone:     cPhone.String,
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

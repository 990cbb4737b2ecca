package service

import (
	"context"

	"github.com/kestrelworks/messagely/internal/domain"
)

// MessageService exposes the two directional message views. Both are pure
// reads; a user with no messages gets an empty slice, not an error.
type MessageService struct {
	messages domain.MessageRepository
}

// NewMessageService creates a new MessageService over the given repository.
func NewMessageService(messages domain.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// From returns the messages username has sent, each with the recipient's
// contact attached, in chronological order.
func (s *MessageService) From(ctx context.Context, username string) ([]domain.SentMessage, error) {
	return s.messages.SentBy(ctx, username)
}

// To returns the messages addressed to username, each with the sender's
// contact attached, in chronological order.
func (s *MessageService) To(ctx context.Context, username string) ([]domain.ReceivedMessage, error) {
	return s.messages.ReceivedBy(ctx, username)
}

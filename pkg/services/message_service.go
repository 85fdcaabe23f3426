package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loomhq/loom/ent"
	"github.com/loomhq/loom/ent/chatmessage"
	"github.com/loomhq/loom/pkg/models"
)

// MessageService manages chat messages within sessions.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// CreateMessage persists a user message. When the message is an edit of an
// earlier one, EditOfMessageID records the lineage.
func (s *MessageService) CreateMessage(httpCtx context.Context, req models.CreateMessageRequest) (*ent.ChatMessage, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetContent(req.Content).
		SetCreatedAt(time.Now())
	if req.Author != "" {
		builder = builder.SetAuthor(req.Author)
	}
	if req.EditedFromID != "" {
		builder = builder.SetEditedFromID(req.EditedFromID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// GetMessage returns a message by ID.
func (s *MessageService) GetMessage(httpCtx context.Context, messageID string) (*ent.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	msg, err := s.client.ChatMessage.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// ListMessages returns all messages for a session in send order.
func (s *MessageService) ListMessages(httpCtx context.Context, sessionID string) ([]*ent.ChatMessage, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	msgs, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// ConversationRepository defines the interface for coach chat persistence.
type ConversationRepository interface {
	// FindLatestByUser retrieves the user's most recent conversation, or nil
	// when none exists.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Conversation, error)

	// Save upserts the conversation with its message history.
	Save(ctx context.Context, conversation *entity.Conversation) error
}

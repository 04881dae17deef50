// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	"github.com/fitness-partner/backend/internal/integration/persistence/model"
)

// conversationRepository implements the adapter.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository instance.
func NewConversationRepository(db *gorm.DB) adapter.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// FindLatestByUser retrieves the user's most recent conversation, or nil when none exists.
func (r *conversationRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Conversation, error) {
	var conversationModel model.ConversationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&conversationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return conversationModel.ToEntity(), nil
}

// Save upserts the conversation with its message history.
func (r *conversationRepository) Save(ctx context.Context, conversation *entity.Conversation) error {
	conversationModel := model.ConversationFromEntity(conversation)
	result := r.db.WithContext(ctx).Save(conversationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

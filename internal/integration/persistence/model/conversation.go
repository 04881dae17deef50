// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// ConversationModel represents the conversations table in the database.
// Messages are stored as a JSON column via the gorm serializer.
type ConversationModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_user_conversation"`
	Messages  []entity.Message `gorm:"serializer:json"`
	CreatedAt time.Time        `gorm:"not null;index:idx_user_conversation"`
	UpdatedAt time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ConversationModel.
func (ConversationModel) TableName() string {
	return "conversations"
}

// ToEntity converts a ConversationModel to a domain Conversation entity.
func (m *ConversationModel) ToEntity() *entity.Conversation {
	return &entity.Conversation{
		ID:        m.ID,
		UserID:    m.UserID,
		Messages:  m.Messages,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ConversationFromEntity creates a ConversationModel from a domain Conversation entity.
func ConversationFromEntity(conversation *entity.Conversation) *ConversationModel {
	return &ConversationModel{
		ID:        conversation.ID,
		UserID:    conversation.UserID,
		Messages:  conversation.Messages,
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
	}
}

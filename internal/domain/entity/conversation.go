// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole identifies who authored a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single turn in a coach conversation.
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// Conversation stores the chat history between a user and the AI coach.
type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewConversation creates an empty conversation for a user.
func NewConversation(userID uuid.UUID) *Conversation {
	now := time.Now().UTC()
	return &Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddUserMessage appends a user turn to the history.
func (c *Conversation) AddUserMessage(content string) {
	c.Messages = append(c.Messages, Message{
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
}

// AddAssistantMessage appends an assistant turn to the history.
func (c *Conversation) AddAssistantMessage(content string) {
	c.Messages = append(c.Messages, Message{
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
}

// LastMessages returns up to count most recent messages in order.
func (c *Conversation) LastMessages(count int) []Message {
	if count <= 0 || len(c.Messages) == 0 {
		return nil
	}
	from := len(c.Messages) - count
	if from < 0 {
		from = 0
	}
	return c.Messages[from:]
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindActiveByPhoneNumber retrieves an active user by their phone number.
	FindActiveByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// FindByPhoneNumber retrieves a user by phone number regardless of the
	// active flag.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// Update updates an existing user in the database.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByPhoneNumber checks if a user with the given phone number exists.
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)
}

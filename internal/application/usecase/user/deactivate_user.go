// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// DeactivateUserInput represents the input for user deactivation.
type DeactivateUserInput struct {
	PhoneNumber string
}

// DeactivateUserOutput represents the output of user deactivation.
type DeactivateUserOutput struct{}

// DeactivateUserUseCase flips the active flag off; records are kept.
type DeactivateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeactivateUserUseCase creates a new DeactivateUserUseCase instance.
func NewDeactivateUserUseCase(userRepo adapter.UserRepository) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{userRepo: userRepo}
}

// Execute performs the deactivation.
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, input DeactivateUserInput) (*DeactivateUserOutput, error) {
	user, err := uc.userRepo.FindByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found with phone number: "+input.PhoneNumber,
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to deactivate user: %w", err)
	}

	slog.Info("User deactivated", "user_id", user.ID)

	return &DeactivateUserOutput{}, nil
}

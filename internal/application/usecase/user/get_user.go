// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// GetUserInput represents the input for user retrieval.
type GetUserInput struct {
	PhoneNumber string
}

// GetUserOutput represents the output of user retrieval.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase retrieves an active user by phone number.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute retrieves the user.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	user, err := uc.userRepo.FindActiveByPhoneNumber(ctx, input.PhoneNumber)
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

	return &GetUserOutput{User: user}, nil
}

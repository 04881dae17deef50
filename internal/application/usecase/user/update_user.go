// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// UpdateUserInput represents the input for user update. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	PhoneNumber   string
	Name          *string
	WeightKg      *float64
	HeightCm      *float64
	ActivityLevel *entity.ActivityLevel
	GoalType      *entity.GoalType
}

// UpdateUserOutput represents the output of user update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles profile updates and recomputes the calorie goal.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo}
}

// Execute performs the update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
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

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.WeightKg != nil {
		user.WeightKg = *input.WeightKg
	}
	if input.HeightCm != nil {
		user.HeightCm = *input.HeightCm
	}
	if input.ActivityLevel != nil {
		user.ActivityLevel = *input.ActivityLevel
	}
	if input.GoalType != nil {
		user.GoalType = *input.GoalType
	}

	if err := validateBiometrics(user.DateOfBirth, user.WeightKg, user.HeightCm, user.Gender, user.ActivityLevel, user.GoalType); err != nil {
		return nil, err
	}

	oldGoal := user.DailyCalorieGoal
	user.UpdateCalorieGoal()
	user.UpdatedAt = time.Now().UTC()

	if user.DailyCalorieGoal < 1000 || user.DailyCalorieGoal > 5000 {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeCalorieGoalOutOfRange,
			fmt.Sprintf("computed daily calorie goal %d is outside the 1000-5000 range", user.DailyCalorieGoal),
			domainerror.ErrCalorieGoalOutOfRange,
		)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if oldGoal != user.DailyCalorieGoal {
		slog.Info("User calorie goal updated",
			"user_id", user.ID,
			"old_goal", oldGoal,
			"new_goal", user.DailyCalorieGoal,
		)
	}

	return &UpdateUserOutput{User: user}, nil
}

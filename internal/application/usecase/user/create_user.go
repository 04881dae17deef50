// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// CreateUserInput represents the input for user creation.
type CreateUserInput struct {
	Name          string
	PhoneNumber   string
	DateOfBirth   time.Time
	WeightKg      float64
	HeightCm      float64
	Gender        entity.Gender
	ActivityLevel entity.ActivityLevel
	GoalType      entity.GoalType
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles user creation logic.
type CreateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(userRepo adapter.UserRepository) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo}
}

// Execute performs the user creation.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	if err := validateBiometrics(input.DateOfBirth, input.WeightKg, input.HeightCm, input.Gender, input.ActivityLevel, input.GoalType); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserAlreadyExists,
			"user with phone number "+input.PhoneNumber+" already exists",
			domainerror.ErrUserAlreadyExists,
		)
	}

	newUser := entity.NewUser(
		input.Name,
		input.PhoneNumber,
		input.DateOfBirth,
		input.WeightKg,
		input.HeightCm,
		input.Gender,
		input.ActivityLevel,
		input.GoalType,
	)

	// The computed goal is surfaced to users, so it must land in the
	// documented 1000-5000 range.
	if newUser.DailyCalorieGoal < 1000 || newUser.DailyCalorieGoal > 5000 {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeCalorieGoalOutOfRange,
			fmt.Sprintf("computed daily calorie goal %d is outside the 1000-5000 range", newUser.DailyCalorieGoal),
			domainerror.ErrCalorieGoalOutOfRange,
		)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created",
		"user_id", newUser.ID,
		"daily_calorie_goal", newUser.DailyCalorieGoal,
	)

	return &CreateUserOutput{User: newUser}, nil
}

// validateBiometrics checks the biometric input ranges and categories.
func validateBiometrics(
	dateOfBirth time.Time,
	weightKg, heightCm float64,
	gender entity.Gender,
	activityLevel entity.ActivityLevel,
	goalType entity.GoalType,
) error {
	if weightKg < 30 || weightKg > 300 {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidWeight,
			"weight must be between 30 and 300 kg",
			domainerror.ErrInvalidWeight,
		)
	}
	if heightCm < 100 || heightCm > 250 {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidHeight,
			"height must be between 100 and 250 cm",
			domainerror.ErrInvalidHeight,
		)
	}
	if !dateOfBirth.Before(time.Now()) {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidDateOfBirth,
			"date of birth must be in the past",
			domainerror.ErrInvalidDateOfBirth,
		)
	}
	if !entity.IsValidGender(gender) {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidGender,
			"gender must be 'male' or 'female'",
			domainerror.ErrInvalidGender,
		)
	}
	if !entity.IsValidActivityLevel(activityLevel) {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidActivityLevel,
			"activity level must be one of the known tiers",
			domainerror.ErrInvalidActivityLevel,
		)
	}
	if !entity.IsValidGoalType(goalType) {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be 'lose_weight', 'maintain_weight', or 'gain_weight'",
			domainerror.ErrInvalidGoalType,
		)
	}
	return nil
}

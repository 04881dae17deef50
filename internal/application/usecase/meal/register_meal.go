// Package meal contains meal-related use cases.
package meal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// RegisterMealInput represents the input for meal registration.
type RegisterMealInput struct {
	PhoneNumber   string
	Description   string
	MealType      entity.MealType
	Calories      *int // Required at this entry point; nil is a validation error
	Protein       *decimal.Decimal
	Carbohydrates *decimal.Decimal
	Fat           *decimal.Decimal
	MealDate      *time.Time // Optional, defaults to now
	Notes         *string
	ImageURL      *string
}

// RegisterMealOutput represents the output of meal registration.
type RegisterMealOutput struct {
	Meal *entity.Meal
	Goal *entity.DailyGoal
}

// RegisterMealUseCase handles meal registration: validates the request,
// enforces the per-day meal cap and persists the meal together with its
// daily goal credit as one transaction.
type RegisterMealUseCase struct {
	mealRepo      adapter.MealRepository
	userRepo      adapter.UserRepository
	maxDailyMeals int
}

// NewRegisterMealUseCase creates a new RegisterMealUseCase instance.
func NewRegisterMealUseCase(mealRepo adapter.MealRepository, userRepo adapter.UserRepository, maxDailyMeals int) *RegisterMealUseCase {
	return &RegisterMealUseCase{
		mealRepo:      mealRepo,
		userRepo:      userRepo,
		maxDailyMeals: maxDailyMeals,
	}
}

// Execute performs the meal registration.
func (uc *RegisterMealUseCase) Execute(ctx context.Context, input RegisterMealInput) (*RegisterMealOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	user, err := findActiveUser(ctx, uc.userRepo, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	// Enforce the daily meal cap before any persistence happens.
	today := time.Now().UTC()
	count, err := uc.mealRepo.CountByUserOnDate(ctx, user.ID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's meals: %w", err)
	}
	if count >= int64(uc.maxDailyMeals) {
		slog.Warn("Daily meal limit reached",
			"user_id", user.ID,
			"count", count,
			"max", uc.maxDailyMeals,
		)
		return nil, domainerror.NewMealError(
			domainerror.ErrCodeDailyLimitExceeded,
			fmt.Sprintf("daily meal limit exceeded, maximum allowed: %d meals per day", uc.maxDailyMeals),
			domainerror.ErrDailyLimitExceeded,
		)
	}

	mealDate := time.Time{}
	if input.MealDate != nil {
		mealDate = *input.MealDate
	}

	newMeal := entity.NewMeal(
		user.ID,
		input.Description,
		input.MealType,
		*input.Calories,
		input.Protein,
		input.Carbohydrates,
		input.Fat,
		mealDate,
		input.Notes,
		input.ImageURL,
	)

	// Meal insert and goal credit are one transaction: a failed credit rolls
	// the meal back.
	goal, err := uc.mealRepo.CreateWithGoalCredit(ctx, newMeal, user.DailyCalorieGoal)
	if err != nil {
		return nil, fmt.Errorf("failed to register meal: %w", err)
	}

	slog.Info("Meal registered",
		"meal_id", newMeal.ID,
		"user_id", user.ID,
		"calories", newMeal.Calories,
		"calories_consumed", goal.CaloriesConsumed,
	)

	return &RegisterMealOutput{Meal: newMeal, Goal: goal}, nil
}

// validate checks the request shape and ranges.
func (uc *RegisterMealUseCase) validate(input RegisterMealInput) error {
	if input.Calories == nil {
		return domainerror.NewMealError(
			domainerror.ErrCodeMissingCalories,
			"calories must be provided, use the description-based endpoint for AI estimation",
			domainerror.ErrMissingCalories,
		)
	}
	if *input.Calories < 1 || *input.Calories > 5000 {
		return domainerror.NewMealError(
			domainerror.ErrCodeInvalidCalories,
			"calories must be between 1 and 5000",
			domainerror.ErrInvalidCalories,
		)
	}
	if len(input.Description) < 3 || len(input.Description) > 500 {
		return domainerror.NewMealError(
			domainerror.ErrCodeInvalidDescription,
			"description must be between 3 and 500 characters",
			domainerror.ErrInvalidDescription,
		)
	}
	if !entity.IsValidMealType(input.MealType) {
		return domainerror.NewMealError(
			domainerror.ErrCodeInvalidMealType,
			"meal type must be one of the known slots",
			domainerror.ErrInvalidMealType,
		)
	}
	for _, macro := range []*decimal.Decimal{input.Protein, input.Carbohydrates, input.Fat} {
		if macro != nil && macro.IsNegative() {
			return domainerror.NewMealError(
				domainerror.ErrCodeNegativeMacro,
				"macro values cannot be negative",
				domainerror.ErrNegativeMacro,
			)
		}
	}
	return nil
}

// findActiveUser resolves a phone number to an active user.
func findActiveUser(ctx context.Context, userRepo adapter.UserRepository, phoneNumber string) (*entity.User, error) {
	user, err := userRepo.FindActiveByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found with phone number: "+phoneNumber,
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

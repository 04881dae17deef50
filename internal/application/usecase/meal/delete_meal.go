// Package meal contains meal-related use cases.
package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/application/adapter"
)

// DeleteMealInput represents the input for meal deletion.
type DeleteMealInput struct {
	MealID      uuid.UUID
	PhoneNumber string
}

// DeleteMealOutput represents the output of meal deletion.
type DeleteMealOutput struct{}

// DeleteMealUseCase removes a meal after an ownership check.
type DeleteMealUseCase struct {
	mealRepo adapter.MealRepository
	userRepo adapter.UserRepository
}

// NewDeleteMealUseCase creates a new DeleteMealUseCase instance.
func NewDeleteMealUseCase(mealRepo adapter.MealRepository, userRepo adapter.UserRepository) *DeleteMealUseCase {
	return &DeleteMealUseCase{
		mealRepo: mealRepo,
		userRepo: userRepo,
	}
}

// Execute deletes the meal.
// TODO: subtract the meal's calories from the day's goal when deleting a
// same-day meal; the credit currently stays on the aggregate.
func (uc *DeleteMealUseCase) Execute(ctx context.Context, input DeleteMealInput) (*DeleteMealOutput, error) {
	user, err := findActiveUser(ctx, uc.userRepo, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	meal, err := loadOwnedMeal(ctx, uc.mealRepo, input.MealID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.mealRepo.Delete(ctx, meal.ID); err != nil {
		return nil, fmt.Errorf("failed to delete meal: %w", err)
	}

	slog.Info("Meal deleted", "meal_id", meal.ID, "user_id", user.ID)

	return &DeleteMealOutput{}, nil
}

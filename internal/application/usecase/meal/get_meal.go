// Package meal contains meal-related use cases.
package meal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// GetMealInput represents the input for single meal retrieval.
type GetMealInput struct {
	MealID      uuid.UUID
	PhoneNumber string
}

// GetMealOutput represents the output of single meal retrieval.
type GetMealOutput struct {
	Meal *entity.Meal
}

// GetMealUseCase retrieves one meal with an ownership check.
type GetMealUseCase struct {
	mealRepo adapter.MealRepository
	userRepo adapter.UserRepository
}

// NewGetMealUseCase creates a new GetMealUseCase instance.
func NewGetMealUseCase(mealRepo adapter.MealRepository, userRepo adapter.UserRepository) *GetMealUseCase {
	return &GetMealUseCase{
		mealRepo: mealRepo,
		userRepo: userRepo,
	}
}

// Execute retrieves the meal.
func (uc *GetMealUseCase) Execute(ctx context.Context, input GetMealInput) (*GetMealOutput, error) {
	user, err := findActiveUser(ctx, uc.userRepo, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	meal, err := loadOwnedMeal(ctx, uc.mealRepo, input.MealID, user.ID)
	if err != nil {
		return nil, err
	}

	return &GetMealOutput{Meal: meal}, nil
}

// loadOwnedMeal fetches a meal and verifies it belongs to the user.
func loadOwnedMeal(ctx context.Context, mealRepo adapter.MealRepository, mealID, userID uuid.UUID) (*entity.Meal, error) {
	meal, err := mealRepo.FindByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMealNotFound) {
			return nil, domainerror.NewMealError(
				domainerror.ErrCodeMealNotFound,
				"meal not found",
				domainerror.ErrMealNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load meal: %w", err)
	}
	if meal.UserID != userID {
		return nil, domainerror.NewMealError(
			domainerror.ErrCodeMealDoesNotBelongToUser,
			"meal does not belong to this user",
			domainerror.ErrMealDoesNotBelongToUser,
		)
	}
	return meal, nil
}

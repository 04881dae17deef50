// Package meal contains meal-related use cases.
package meal

import (
	"context"
	"fmt"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
)

// ListMealsInput represents the input for meal listing. When StartDate and
// EndDate are both nil, all meals are returned; a single date restricts to
// that day.
type ListMealsInput struct {
	PhoneNumber string
	StartDate   *time.Time
	EndDate     *time.Time
}

// ListMealsOutput represents the output of meal listing.
type ListMealsOutput struct {
	Meals []*entity.Meal
}

// ListMealsUseCase handles meal listing, newest first.
type ListMealsUseCase struct {
	mealRepo adapter.MealRepository
	userRepo adapter.UserRepository
}

// NewListMealsUseCase creates a new ListMealsUseCase instance.
func NewListMealsUseCase(mealRepo adapter.MealRepository, userRepo adapter.UserRepository) *ListMealsUseCase {
	return &ListMealsUseCase{
		mealRepo: mealRepo,
		userRepo: userRepo,
	}
}

// Execute retrieves the user's meals for the requested window.
func (uc *ListMealsUseCase) Execute(ctx context.Context, input ListMealsInput) (*ListMealsOutput, error) {
	user, err := findActiveUser(ctx, uc.userRepo, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if input.StartDate == nil && input.EndDate == nil {
		meals, err := uc.mealRepo.FindByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list meals: %w", err)
		}
		return &ListMealsOutput{Meals: meals}, nil
	}

	start := time.Now().UTC()
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := start
	if input.EndDate != nil {
		end = *input.EndDate
	}

	// Half-open day window [start 00:00, end+1d 00:00).
	startOfWindow := entity.TruncateToDate(start)
	endOfWindow := entity.TruncateToDate(end).AddDate(0, 0, 1)

	meals, err := uc.mealRepo.FindByUserAndDateRange(ctx, user.ID, startOfWindow, endOfWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return &ListMealsOutput{Meals: meals}, nil
}

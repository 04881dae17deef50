// Package dailygoal contains daily calorie goal use cases.
package dailygoal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// AddCaloriesInput represents the input for crediting calories to a day.
type AddCaloriesInput struct {
	PhoneNumber string
	Calories    int
	Date        *time.Time // Optional, defaults to today
}

// AddCaloriesOutput represents the output of a calorie credit.
type AddCaloriesOutput struct {
	Goal *entity.DailyGoal
}

// AddCaloriesUseCase folds meal calories into the day's aggregate.
type AddCaloriesUseCase struct {
	goalRepo adapter.DailyGoalRepository
	userRepo adapter.UserRepository
}

// NewAddCaloriesUseCase creates a new AddCaloriesUseCase instance.
func NewAddCaloriesUseCase(goalRepo adapter.DailyGoalRepository, userRepo adapter.UserRepository) *AddCaloriesUseCase {
	return &AddCaloriesUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute loads-or-creates the aggregate, adds the calories and increments the
// meal count.
func (uc *AddCaloriesUseCase) Execute(ctx context.Context, input AddCaloriesInput) (*AddCaloriesOutput, error) {
	if input.Calories <= 0 {
		return nil, domainerror.NewDailyGoalError(
			domainerror.ErrCodeInvalidCalorieCredit,
			"calories to add must be positive",
			domainerror.ErrInvalidCalorieCredit,
		)
	}

	user, err := findActiveUser(ctx, uc.userRepo, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	goal, err := getOrCreateDailyGoal(ctx, uc.goalRepo, user, date)
	if err != nil {
		return nil, err
	}

	goal.AddMeal(input.Calories)

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update daily goal: %w", err)
	}

	slog.Info("Daily goal updated",
		"user_id", user.ID,
		"calories_consumed", goal.CaloriesConsumed,
		"calorie_goal", goal.CalorieGoal,
		"meal_count", goal.MealCount,
	)

	return &AddCaloriesOutput{Goal: goal}, nil
}

// Package dailygoal contains daily calorie goal use cases.
package dailygoal

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

// ResetDailyGoalInput represents the input for resetting a day's aggregate.
type ResetDailyGoalInput struct {
	PhoneNumber string
	Date        *time.Time // Optional, defaults to today
}

// ResetDailyGoalOutput represents the output of a reset.
type ResetDailyGoalOutput struct {
	Goal *entity.DailyGoal
}

// ResetDailyGoalUseCase zeroes the consumed calories and meal count for a day.
// Reset never creates: a date without an aggregate is a not-found error.
type ResetDailyGoalUseCase struct {
	goalRepo adapter.DailyGoalRepository
	userRepo adapter.UserRepository
}

// NewResetDailyGoalUseCase creates a new ResetDailyGoalUseCase instance.
func NewResetDailyGoalUseCase(goalRepo adapter.DailyGoalRepository, userRepo adapter.UserRepository) *ResetDailyGoalUseCase {
	return &ResetDailyGoalUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute performs the reset.
func (uc *ResetDailyGoalUseCase) Execute(ctx context.Context, input ResetDailyGoalInput) (*ResetDailyGoalOutput, error) {
	user, err := findActiveUser(ctx, uc.userRepo, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	goal, err := uc.goalRepo.FindByUserAndDate(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, domainerror.ErrDailyGoalNotFound) {
			return nil, domainerror.NewDailyGoalError(
				domainerror.ErrCodeDailyGoalNotFound,
				"no daily goal found for this date",
				domainerror.ErrDailyGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load daily goal: %w", err)
	}

	goal.Reset()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to reset daily goal: %w", err)
	}

	slog.Info("Daily goal reset",
		"user_id", user.ID,
		"date", goal.Date.Format("2006-01-02"),
	)

	return &ResetDailyGoalOutput{Goal: goal}, nil
}

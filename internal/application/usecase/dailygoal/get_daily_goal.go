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

// GetDailyGoalInput represents the input for daily goal retrieval.
type GetDailyGoalInput struct {
	PhoneNumber string
	Date        *time.Time // Optional, defaults to today
}

// GetDailyGoalOutput represents the output of daily goal retrieval.
type GetDailyGoalOutput struct {
	Goal *entity.DailyGoal
}

// GetDailyGoalUseCase returns the aggregate for a date, creating it lazily.
type GetDailyGoalUseCase struct {
	goalRepo adapter.DailyGoalRepository
	userRepo adapter.UserRepository
}

// NewGetDailyGoalUseCase creates a new GetDailyGoalUseCase instance.
func NewGetDailyGoalUseCase(goalRepo adapter.DailyGoalRepository, userRepo adapter.UserRepository) *GetDailyGoalUseCase {
	return &GetDailyGoalUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute performs the lazy get-or-create for the requested date.
func (uc *GetDailyGoalUseCase) Execute(ctx context.Context, input GetDailyGoalInput) (*GetDailyGoalOutput, error) {
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

	return &GetDailyGoalOutput{Goal: goal}, nil
}

// getOrCreateDailyGoal loads the aggregate for (user, date) or inserts a new
// one seeded with the user's current calorie goal. A losing concurrent insert
// is resolved by one re-fetch; the conflict is surfaced only if that retry
// also fails.
func getOrCreateDailyGoal(
	ctx context.Context,
	goalRepo adapter.DailyGoalRepository,
	user *entity.User,
	date time.Time,
) (*entity.DailyGoal, error) {
	goal, err := goalRepo.FindByUserAndDate(ctx, user.ID, date)
	if err == nil {
		return goal, nil
	}
	if !errors.Is(err, domainerror.ErrDailyGoalNotFound) {
		return nil, fmt.Errorf("failed to load daily goal: %w", err)
	}

	goal = entity.NewDailyGoal(user.ID, date, user.DailyCalorieGoal)
	err = goalRepo.Create(ctx, goal)
	if err == nil {
		slog.Info("Created daily goal",
			"user_id", user.ID,
			"date", goal.Date.Format("2006-01-02"),
			"calorie_goal", goal.CalorieGoal,
		)
		return goal, nil
	}
	if !errors.Is(err, domainerror.ErrDailyGoalConflict) {
		return nil, fmt.Errorf("failed to create daily goal: %w", err)
	}

	// A concurrent request inserted the row first; take theirs.
	goal, err = goalRepo.FindByUserAndDate(ctx, user.ID, date)
	if err != nil {
		return nil, domainerror.NewDailyGoalError(
			domainerror.ErrCodeDailyGoalConflict,
			"concurrent daily goal creation could not be resolved",
			domainerror.ErrDailyGoalConflict,
		)
	}
	return goal, nil
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

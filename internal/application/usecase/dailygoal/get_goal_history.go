// Package dailygoal contains daily calorie goal use cases.
package dailygoal

import (
	"context"
	"fmt"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// GetGoalHistoryInput represents the input for goal history retrieval.
type GetGoalHistoryInput struct {
	PhoneNumber string
	Days        int
	EndDate     *time.Time // Optional, defaults to today
}

// GetGoalHistoryOutput represents the output of goal history retrieval.
type GetGoalHistoryOutput struct {
	Goals []*entity.DailyGoal
}

// GetGoalHistoryUseCase returns the aggregates for the last N days, newest
// first. The list is sparse: days without a lookup or a meal have no row.
type GetGoalHistoryUseCase struct {
	goalRepo adapter.DailyGoalRepository
	userRepo adapter.UserRepository
}

// NewGetGoalHistoryUseCase creates a new GetGoalHistoryUseCase instance.
func NewGetGoalHistoryUseCase(goalRepo adapter.DailyGoalRepository, userRepo adapter.UserRepository) *GetGoalHistoryUseCase {
	return &GetGoalHistoryUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute retrieves the history window [end-days+1, end].
func (uc *GetGoalHistoryUseCase) Execute(ctx context.Context, input GetGoalHistoryInput) (*GetGoalHistoryOutput, error) {
	if input.Days <= 0 {
		return nil, domainerror.NewDailyGoalError(
			domainerror.ErrCodeInvalidHistoryDays,
			"history days must be positive",
			domainerror.ErrInvalidHistoryDays,
		)
	}

	user, err := findActiveUser(ctx, uc.userRepo, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	end := time.Now().UTC()
	if input.EndDate != nil {
		end = *input.EndDate
	}
	end = entity.TruncateToDate(end)
	start := end.AddDate(0, 0, -(input.Days - 1))

	goals, err := uc.goalRepo.FindByUserAndDateRange(ctx, user.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal history: %w", err)
	}

	return &GetGoalHistoryOutput{Goals: goals}, nil
}

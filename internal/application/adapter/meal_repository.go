// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// MealRepository defines the interface for meal persistence operations.
type MealRepository interface {
	// CreateWithGoalCredit persists the meal and credits its calories to the
	// owner's daily goal for the meal date inside a single transaction. The
	// aggregate is created lazily, seeded with calorieGoal, when the date has
	// no row yet. Returns the updated aggregate.
	CreateWithGoalCredit(ctx context.Context, meal *entity.Meal, calorieGoal int) (*entity.DailyGoal, error)

	// FindByID retrieves a meal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)

	// FindByUser retrieves all meals for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Meal, error)

	// FindByUserAndDateRange retrieves the user's meals within [start, end),
	// newest first.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Meal, error)

	// CountByUserOnDate counts the user's meals on the given calendar date.
	CountByUserOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error)

	// Delete removes a meal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

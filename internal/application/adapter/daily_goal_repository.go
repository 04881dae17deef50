// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// DailyGoalRepository defines the interface for daily goal persistence.
// Rows are keyed by (user_id, date) with a composite unique constraint; Create
// returns domainerror.ErrDailyGoalConflict when a concurrent insert for the
// same key already landed.
type DailyGoalRepository interface {
	// Create inserts a new aggregate row.
	Create(ctx context.Context, goal *entity.DailyGoal) error

	// FindByUserAndDate retrieves the aggregate for the given calendar date,
	// or domainerror.ErrDailyGoalNotFound.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyGoal, error)

	// FindByUserAndDateRange retrieves aggregates within [start, end],
	// descending by date. Dates without activity have no row.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DailyGoal, error)

	// Update persists changes to an existing aggregate.
	Update(ctx context.Context, goal *entity.DailyGoal) error
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
	"github.com/fitness-partner/backend/internal/integration/persistence/model"
)

// dailyGoalRepository implements the adapter.DailyGoalRepository interface.
type dailyGoalRepository struct {
	db *gorm.DB
}

// NewDailyGoalRepository creates a new daily goal repository instance.
func NewDailyGoalRepository(db *gorm.DB) adapter.DailyGoalRepository {
	return &dailyGoalRepository{
		db: db,
	}
}

// Create inserts a new aggregate row. Returns ErrDailyGoalConflict when a row
// for the same (user, date) already exists.
func (r *dailyGoalRepository) Create(ctx context.Context, goal *entity.DailyGoal) error {
	goalModel := model.DailyGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return domainerror.ErrDailyGoalConflict
		}
		return result.Error
	}
	return nil
}

// FindByUserAndDate retrieves the aggregate for the given calendar date.
func (r *dailyGoalRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyGoal, error) {
	var goalModel model.DailyGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date = ?", entity.TruncateToDate(date)).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDailyGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserAndDateRange retrieves aggregates within [start, end], newest
// first. Dates without activity have no row and are simply absent.
func (r *dailyGoalRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DailyGoal, error) {
	var goalModels []model.DailyGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", entity.TruncateToDate(start), entity.TruncateToDate(end)).
		Order("date DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.DailyGoal, len(goalModels))
	for i, goalModel := range goalModels {
		goals[i] = goalModel.ToEntity()
	}
	return goals, nil
}

// Update persists changes to an existing aggregate.
func (r *dailyGoalRepository) Update(ctx context.Context, goal *entity.DailyGoal) error {
	goalModel := model.DailyGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

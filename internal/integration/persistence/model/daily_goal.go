// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// DailyGoalModel represents the daily_goals table in the database.
// The composite unique index on (user_id, date) is the correctness mechanism
// for lazy creation under concurrency.
type DailyGoalModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_date"`
	Date             time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date;index"`
	CalorieGoal      int       `gorm:"not null"`
	CaloriesConsumed int       `gorm:"not null;default:0"`
	MealCount        int       `gorm:"not null;default:0"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the DailyGoalModel.
func (DailyGoalModel) TableName() string {
	return "daily_goals"
}

// ToEntity converts a DailyGoalModel to a domain DailyGoal entity.
func (m *DailyGoalModel) ToEntity() *entity.DailyGoal {
	return &entity.DailyGoal{
		ID:               m.ID,
		UserID:           m.UserID,
		Date:             entity.TruncateToDate(m.Date),
		CalorieGoal:      m.CalorieGoal,
		CaloriesConsumed: m.CaloriesConsumed,
		MealCount:        m.MealCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// DailyGoalFromEntity creates a DailyGoalModel from a domain DailyGoal entity.
func DailyGoalFromEntity(goal *entity.DailyGoal) *DailyGoalModel {
	return &DailyGoalModel{
		ID:               goal.ID,
		UserID:           goal.UserID,
		Date:             goal.Date,
		CalorieGoal:      goal.CalorieGoal,
		CaloriesConsumed: goal.CaloriesConsumed,
		MealCount:        goal.MealCount,
		CreatedAt:        goal.CreatedAt,
		UpdatedAt:        goal.UpdatedAt,
	}
}

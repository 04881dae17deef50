// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// MealModel represents the meals table in the database.
type MealModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_user_meal_date"`
	Description   string           `gorm:"type:varchar(500);not null"`
	MealType      string           `gorm:"type:varchar(30);not null"`
	Calories      int              `gorm:"not null"`
	Protein       *decimal.Decimal `gorm:"type:decimal(7,2)"`
	Carbohydrates *decimal.Decimal `gorm:"type:decimal(7,2)"`
	Fat           *decimal.Decimal `gorm:"type:decimal(7,2)"`
	MealDate      time.Time        `gorm:"not null;index:idx_user_meal_date;index"`
	Notes         *string          `gorm:"type:varchar(1000)"`
	ImageURL      *string          `gorm:"type:varchar(500)"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the MealModel.
func (MealModel) TableName() string {
	return "meals"
}

// ToEntity converts a MealModel to a domain Meal entity.
func (m *MealModel) ToEntity() *entity.Meal {
	return &entity.Meal{
		ID:            m.ID,
		UserID:        m.UserID,
		Description:   m.Description,
		MealType:      entity.MealType(m.MealType),
		Calories:      m.Calories,
		Protein:       m.Protein,
		Carbohydrates: m.Carbohydrates,
		Fat:           m.Fat,
		MealDate:      m.MealDate,
		Notes:         m.Notes,
		ImageURL:      m.ImageURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// MealFromEntity creates a MealModel from a domain Meal entity.
func MealFromEntity(meal *entity.Meal) *MealModel {
	return &MealModel{
		ID:            meal.ID,
		UserID:        meal.UserID,
		Description:   meal.Description,
		MealType:      string(meal.MealType),
		Calories:      meal.Calories,
		Protein:       meal.Protein,
		Carbohydrates: meal.Carbohydrates,
		Fat:           meal.Fat,
		MealDate:      meal.MealDate,
		Notes:         meal.Notes,
		ImageURL:      meal.ImageURL,
		CreatedAt:     meal.CreatedAt,
		UpdatedAt:     meal.UpdatedAt,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealType represents the meal slot during the day.
type MealType string

const (
	MealTypeBreakfast      MealType = "breakfast"
	MealTypeMorningSnack   MealType = "morning_snack"
	MealTypeLunch          MealType = "lunch"
	MealTypeAfternoonSnack MealType = "afternoon_snack"
	MealTypeDinner         MealType = "dinner"
	MealTypeEveningSnack   MealType = "evening_snack"
	MealTypeOther          MealType = "other"
)

// mealTypes is the set of accepted meal slots.
var mealTypes = map[MealType]struct{}{
	MealTypeBreakfast:      {},
	MealTypeMorningSnack:   {},
	MealTypeLunch:          {},
	MealTypeAfternoonSnack: {},
	MealTypeDinner:         {},
	MealTypeEveningSnack:   {},
	MealTypeOther:          {},
}

// IsValidMealType reports whether the meal type is a known slot.
func IsValidMealType(m MealType) bool {
	_, ok := mealTypes[m]
	return ok
}

// Meal represents a registered meal with nutritional information.
// Immutable after creation; removal is the only lifecycle transition.
type Meal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Description   string
	MealType      MealType
	Calories      int
	Protein       *decimal.Decimal // grams
	Carbohydrates *decimal.Decimal // grams
	Fat           *decimal.Decimal // grams
	MealDate      time.Time
	Notes         *string
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewMeal creates a new Meal. A zero mealDate defaults to the creation time.
func NewMeal(
	userID uuid.UUID,
	description string,
	mealType MealType,
	calories int,
	protein, carbohydrates, fat *decimal.Decimal,
	mealDate time.Time,
	notes, imageURL *string,
) *Meal {
	now := time.Now().UTC()
	if mealDate.IsZero() {
		mealDate = now
	}

	return &Meal{
		ID:            uuid.New(),
		UserID:        userID,
		Description:   description,
		MealType:      mealType,
		Calories:      calories,
		Protein:       protein,
		Carbohydrates: carbohydrates,
		Fat:           fat,
		MealDate:      mealDate,
		Notes:         notes,
		ImageURL:      imageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

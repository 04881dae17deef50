// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// RegisterMealRequest represents the request body for manual meal registration.
// Calories are required at this entry point.
type RegisterMealRequest struct {
	PhoneNumber   string           `json:"phone_number" binding:"required"`
	Description   string           `json:"description" binding:"required"`
	MealType      string           `json:"meal_type" binding:"required"`
	Calories      *int             `json:"calories"`
	Protein       *decimal.Decimal `json:"protein,omitempty"`
	Carbohydrates *decimal.Decimal `json:"carbohydrates,omitempty"`
	Fat           *decimal.Decimal `json:"fat,omitempty"`
	MealDate      *time.Time       `json:"meal_date,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
}

// RegisterMealFromDescriptionRequest represents the request body for
// AI-assisted meal registration.
type RegisterMealFromDescriptionRequest struct {
	PhoneNumber string     `json:"phone_number" binding:"required"`
	Description string     `json:"description" binding:"required"`
	MealType    string     `json:"meal_type" binding:"required"`
	MealDate    *time.Time `json:"meal_date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// MealResponse represents a single meal in API responses.
type MealResponse struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Description   string           `json:"description"`
	MealType      string           `json:"meal_type"`
	Calories      int              `json:"calories"`
	Protein       *decimal.Decimal `json:"protein,omitempty"`
	Carbohydrates *decimal.Decimal `json:"carbohydrates,omitempty"`
	Fat           *decimal.Decimal `json:"fat,omitempty"`
	MealDate      time.Time        `json:"meal_date"`
	Notes         *string          `json:"notes,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// MealListResponse represents the response for listing meals.
type MealListResponse struct {
	Meals []MealResponse `json:"meals"`
	Total int            `json:"total"`
}

// RegisterMealResponse represents the response for meal registration,
// including the updated daily progress.
type RegisterMealResponse struct {
	Meal MealResponse      `json:"meal"`
	Goal DailyGoalResponse `json:"daily_goal"`
}

// RegisterMealFromDescriptionResponse additionally carries the nutrition
// estimate that fed the registration.
type RegisterMealFromDescriptionResponse struct {
	Meal     MealResponse      `json:"meal"`
	Goal     DailyGoalResponse `json:"daily_goal"`
	Estimate EstimateResponse  `json:"estimate"`
}

// ToMealResponse converts a domain Meal entity to a MealResponse DTO.
func ToMealResponse(meal *entity.Meal) MealResponse {
	return MealResponse{
		ID:            meal.ID.String(),
		UserID:        meal.UserID.String(),
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
	}
}

// ToMealListResponse converts a list of meals to MealListResponse.
func ToMealListResponse(meals []*entity.Meal) MealListResponse {
	responses := make([]MealResponse, len(meals))
	for i, meal := range meals {
		responses[i] = ToMealResponse(meal)
	}
	return MealListResponse{
		Meals: responses,
		Total: len(responses),
	}
}

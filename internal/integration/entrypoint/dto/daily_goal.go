// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/fitness-partner/backend/internal/domain/entity"
)

// AddCaloriesRequest represents the request body for a direct calorie credit.
type AddCaloriesRequest struct {
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Calories    int     `json:"calories" binding:"required"`
	Date        *string `json:"date,omitempty"`
}

// ResetDailyGoalRequest represents the request body for a daily reset.
type ResetDailyGoalRequest struct {
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Date        *string `json:"date,omitempty"`
}

// DailyGoalResponse represents a daily goal aggregate in API responses.
// Progress fields are derived from the stored counters at read time.
type DailyGoalResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	Date               string  `json:"date"`
	CalorieGoal        int     `json:"calorie_goal"`
	CaloriesConsumed   int     `json:"calories_consumed"`
	RemainingCalories  int     `json:"remaining_calories"`
	ProgressPercentage float64 `json:"progress_percentage"`
	MealCount          int     `json:"meal_count"`
	GoalMet            bool    `json:"goal_met"`
	Status             string  `json:"status"`
}

// DailyGoalHistoryResponse represents the response for goal history. Days
// without activity have no entry.
type DailyGoalHistoryResponse struct {
	Goals []DailyGoalResponse `json:"goals"`
	Total int                 `json:"total"`
}

// ToDailyGoalResponse converts a domain DailyGoal entity to a DailyGoalResponse DTO.
func ToDailyGoalResponse(goal *entity.DailyGoal) DailyGoalResponse {
	return DailyGoalResponse{
		ID:                 goal.ID.String(),
		UserID:             goal.UserID.String(),
		Date:               goal.Date.Format("2006-01-02"),
		CalorieGoal:        goal.CalorieGoal,
		CaloriesConsumed:   goal.CaloriesConsumed,
		RemainingCalories:  goal.RemainingCalories(),
		ProgressPercentage: goal.ProgressPercentage(),
		MealCount:          goal.MealCount,
		GoalMet:            goal.IsGoalMet(),
		Status:             string(goal.Status()),
	}
}

// ToDailyGoalHistoryResponse converts a list of aggregates to DailyGoalHistoryResponse.
func ToDailyGoalHistoryResponse(goals []*entity.DailyGoal) DailyGoalHistoryResponse {
	responses := make([]DailyGoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToDailyGoalResponse(goal)
	}
	return DailyGoalHistoryResponse{
		Goals: responses,
		Total: len(responses),
	}
}

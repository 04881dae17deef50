// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// CreateUserRequest represents the request body for user creation.
type CreateUserRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=100"`
	PhoneNumber   string  `json:"phone_number" binding:"required,min=8,max=20"`
	DateOfBirth   string  `json:"date_of_birth" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm      float64 `json:"height_cm" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required,oneof=male female"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	GoalType      string  `json:"goal_type" binding:"required"`
}

// UpdateUserRequest represents the request body for profile update.
type UpdateUserRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	WeightKg      *float64 `json:"weight_kg,omitempty" binding:"omitempty,gt=0"`
	HeightCm      *float64 `json:"height_cm,omitempty" binding:"omitempty,gt=0"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	GoalType      *string  `json:"goal_type,omitempty"`
}

// UserResponse represents a single user in API responses.
type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	PhoneNumber      string    `json:"phone_number"`
	DateOfBirth      string    `json:"date_of_birth"`
	WeightKg         float64   `json:"weight_kg"`
	HeightCm         float64   `json:"height_cm"`
	Gender           string    `json:"gender"`
	ActivityLevel    string    `json:"activity_level"`
	GoalType         string    `json:"goal_type"`
	DailyCalorieGoal int       `json:"daily_calorie_goal"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID.String(),
		Name:             user.Name,
		PhoneNumber:      user.PhoneNumber,
		DateOfBirth:      user.DateOfBirth.Format("2006-01-02"),
		WeightKg:         user.WeightKg,
		HeightCm:         user.HeightCm,
		Gender:           string(user.Gender),
		ActivityLevel:    string(user.ActivityLevel),
		GoalType:         string(user.GoalType),
		DailyCalorieGoal: user.DailyCalorieGoal,
		IsActive:         user.IsActive,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

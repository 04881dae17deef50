// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(100);not null"`
	PhoneNumber      string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	DateOfBirth      time.Time `gorm:"type:date;not null"`
	WeightKg         float64   `gorm:"not null"`
	HeightCm         float64   `gorm:"not null"`
	Gender           string    `gorm:"type:varchar(10);not null"`
	ActivityLevel    string    `gorm:"type:varchar(30);not null"`
	GoalType         string    `gorm:"type:varchar(30);not null"`
	DailyCalorieGoal int       `gorm:"not null"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:               m.ID,
		Name:             m.Name,
		PhoneNumber:      m.PhoneNumber,
		DateOfBirth:      m.DateOfBirth,
		WeightKg:         m.WeightKg,
		HeightCm:         m.HeightCm,
		Gender:           entity.Gender(m.Gender),
		ActivityLevel:    entity.ActivityLevel(m.ActivityLevel),
		GoalType:         entity.GoalType(m.GoalType),
		DailyCalorieGoal: m.DailyCalorieGoal,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:               user.ID,
		Name:             user.Name,
		PhoneNumber:      user.PhoneNumber,
		DateOfBirth:      user.DateOfBirth,
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

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Gender represents the biological sex category used for BMR calculation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// bmrOffsets holds the Mifflin-St Jeor sex offset per gender.
var bmrOffsets = map[Gender]float64{
	GenderMale:   5,
	GenderFemale: -161,
}

// ActivityLevel represents the user's physical activity tier.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// activityMultipliers maps each activity tier to its TDEE multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

// GoalType represents the user's fitness goal.
type GoalType string

const (
	GoalLoseWeight     GoalType = "lose_weight"
	GoalMaintainWeight GoalType = "maintain_weight"
	GoalGainWeight     GoalType = "gain_weight"
)

// goalAdjustments maps each goal to its daily calorie adjustment.
var goalAdjustments = map[GoalType]float64{
	GoalLoseWeight:     -500,
	GoalMaintainWeight: 0,
	GoalGainWeight:     500,
}

// IsValidGender reports whether the gender value is a known category.
func IsValidGender(g Gender) bool {
	_, ok := bmrOffsets[g]
	return ok
}

// IsValidActivityLevel reports whether the activity level is a known tier.
func IsValidActivityLevel(a ActivityLevel) bool {
	_, ok := activityMultipliers[a]
	return ok
}

// IsValidGoalType reports whether the goal type is a known category.
func IsValidGoalType(g GoalType) bool {
	_, ok := goalAdjustments[g]
	return ok
}

// User represents a fitness partner user with profile and biometric data.
type User struct {
	ID               uuid.UUID
	Name             string
	PhoneNumber      string
	DateOfBirth      time.Time
	WeightKg         float64
	HeightCm         float64
	Gender           Gender
	ActivityLevel    ActivityLevel
	GoalType         GoalType
	DailyCalorieGoal int
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUser creates a new active User and computes its daily calorie goal.
func NewUser(
	name, phoneNumber string,
	dateOfBirth time.Time,
	weightKg, heightCm float64,
	gender Gender,
	activityLevel ActivityLevel,
	goalType GoalType,
) *User {
	now := time.Now().UTC()

	user := &User{
		ID:            uuid.New(),
		Name:          name,
		PhoneNumber:   phoneNumber,
		DateOfBirth:   dateOfBirth,
		WeightKg:      weightKg,
		HeightCm:      heightCm,
		Gender:        gender,
		ActivityLevel: activityLevel,
		GoalType:      goalType,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	user.UpdateCalorieGoal()

	return user
}

// ComputeAge returns the calendar-year difference between today and the date
// of birth. Year-only subtraction: may be off by up to one year before the
// birthday, kept for compatibility with stored calorie goals.
func ComputeAge(dateOfBirth, today time.Time) int {
	return today.Year() - dateOfBirth.Year()
}

// BMR calculates the Basal Metabolic Rate using the Mifflin-St Jeor equation:
// 10*weight(kg) + 6.25*height(cm) - 5*age + sex offset (+5 male, -161 female).
func (u *User) BMR() float64 {
	age := ComputeAge(u.DateOfBirth, time.Now())
	return 10*u.WeightKg + 6.25*u.HeightCm - 5*float64(age) + bmrOffsets[u.Gender]
}

// TDEE calculates the Total Daily Energy Expenditure: BMR scaled by the
// activity multiplier.
func (u *User) TDEE() float64 {
	return u.BMR() * activityMultipliers[u.ActivityLevel]
}

// CalculateDailyCalorieGoal derives the daily calorie target from TDEE and
// the goal adjustment (-500 lose, 0 maintain, +500 gain).
func (u *User) CalculateDailyCalorieGoal() int {
	return int(math.Round(u.TDEE() + goalAdjustments[u.GoalType]))
}

// UpdateCalorieGoal recomputes and stores the daily calorie goal from the
// current profile.
func (u *User) UpdateCalorieGoal() {
	u.DailyCalorieGoal = u.CalculateDailyCalorieGoal()
}

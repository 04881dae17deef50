// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalStatus classifies the day's progress against the calorie goal.
type GoalStatus string

const (
	StatusUnderGoal GoalStatus = "Under Goal"
	StatusOnTrack   GoalStatus = "On Track"
	StatusOverGoal  GoalStatus = "Over Goal"
)

// DailyGoal is the per-user per-calendar-day calorie aggregate. Exactly one
// row exists per (user, date), enforced by a composite unique constraint and
// created lazily on first lookup or first meal of the day.
type DailyGoal struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             time.Time // calendar date, time fields zeroed
	CalorieGoal      int
	CaloriesConsumed int
	MealCount        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewDailyGoal creates an empty aggregate for the given user and date, seeded
// with the user's current calorie goal.
func NewDailyGoal(userID uuid.UUID, date time.Time, calorieGoal int) *DailyGoal {
	now := time.Now().UTC()
	return &DailyGoal{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        TruncateToDate(date),
		CalorieGoal: calorieGoal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TruncateToDate strips the time-of-day portion, keeping the calendar date in
// UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RemainingCalories returns the calories left for the day. Negative when the
// goal has been exceeded.
func (g *DailyGoal) RemainingCalories() int {
	return g.CalorieGoal - g.CaloriesConsumed
}

// ProgressPercentage returns consumed/goal as a percentage. Zero when the
// goal is zero.
func (g *DailyGoal) ProgressPercentage() float64 {
	if g.CalorieGoal == 0 {
		return 0
	}
	return float64(g.CaloriesConsumed) / float64(g.CalorieGoal) * 100
}

// IsGoalMet reports whether the day landed within 10% of the goal (90-110%).
// Intentionally tighter than the Status bands.
func (g *DailyGoal) IsGoalMet() bool {
	pct := g.ProgressPercentage()
	return pct >= 90 && pct <= 110
}

// Status classifies progress: <80% Under Goal, 80-110% On Track, >110% Over
// Goal.
func (g *DailyGoal) Status() GoalStatus {
	pct := g.ProgressPercentage()
	switch {
	case pct < 80:
		return StatusUnderGoal
	case pct <= 110:
		return StatusOnTrack
	default:
		return StatusOverGoal
	}
}

// AddMeal folds one meal's calories into the daily total.
func (g *DailyGoal) AddMeal(calories int) {
	g.CaloriesConsumed += calories
	g.MealCount++
	g.UpdatedAt = time.Now().UTC()
}

// Reset zeroes the consumed calories and meal count, keeping the goal and
// date untouched.
func (g *DailyGoal) Reset() {
	g.CaloriesConsumed = 0
	g.MealCount = 0
	g.UpdatedAt = time.Now().UTC()
}

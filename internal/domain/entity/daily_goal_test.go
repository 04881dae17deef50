// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestGoal(calorieGoal, consumed int) *DailyGoal {
	goal := NewDailyGoal(uuid.New(), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), calorieGoal)
	goal.CaloriesConsumed = consumed
	return goal
}

func TestDailyGoal_Status(t *testing.T) {
	cases := []struct {
		name     string
		consumed int
		expected GoalStatus
	}{
		{"just under the on-track band", 1598, StatusUnderGoal}, // 79.9%
		{"lower band edge", 1600, StatusOnTrack},                // 80%
		{"upper band edge", 2200, StatusOnTrack},                // 110%
		{"just over the on-track band", 2202, StatusOverGoal},   // 110.1%
		{"nothing consumed", 0, StatusUnderGoal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			goal := newTestGoal(2000, tc.consumed)
			if got := goal.Status(); got != tc.expected {
				t.Errorf("expected status %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestDailyGoal_IsGoalMet(t *testing.T) {
	// The met window [90, 110] is narrower than the on-track band [80, 110].
	cases := []struct {
		name     string
		consumed int
		expected bool
	}{
		{"just below the met window", 1798, false}, // 89.9%
		{"lower met edge", 1800, true},             // 90%
		{"upper met edge", 2200, true},             // 110%
		{"just above the met window", 2202, false}, // 110.1%
		{"on track but not met", 1700, false},      // 85%
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			goal := newTestGoal(2000, tc.consumed)
			if got := goal.IsGoalMet(); got != tc.expected {
				t.Errorf("expected goal met %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestDailyGoal_ProgressPercentage(t *testing.T) {
	t.Run("computes percentage", func(t *testing.T) {
		goal := newTestGoal(2000, 500)
		if got := goal.ProgressPercentage(); got != 25 {
			t.Errorf("expected 25, got %.2f", got)
		}
	})

	t.Run("zero goal yields zero instead of dividing", func(t *testing.T) {
		goal := newTestGoal(0, 500)
		if got := goal.ProgressPercentage(); got != 0 {
			t.Errorf("expected 0, got %.2f", got)
		}
	})
}

func TestDailyGoal_RemainingCalories(t *testing.T) {
	goal := newTestGoal(2000, 2500)
	if got := goal.RemainingCalories(); got != -500 {
		t.Errorf("expected -500, got %d", got)
	}
}

func TestDailyGoal_AddMeal(t *testing.T) {
	t.Run("accumulates calories and count", func(t *testing.T) {
		goal := newTestGoal(2000, 0)
		goal.AddMeal(300)
		goal.AddMeal(450)

		if goal.CaloriesConsumed != 750 {
			t.Errorf("expected 750 consumed, got %d", goal.CaloriesConsumed)
		}
		if goal.MealCount != 2 {
			t.Errorf("expected meal count 2, got %d", goal.MealCount)
		}
	})

	t.Run("order does not matter", func(t *testing.T) {
		a := newTestGoal(2000, 0)
		a.AddMeal(300)
		a.AddMeal(450)

		b := newTestGoal(2000, 0)
		b.AddMeal(450)
		b.AddMeal(300)

		if a.CaloriesConsumed != b.CaloriesConsumed || a.MealCount != b.MealCount {
			t.Error("expected the same totals regardless of order")
		}
	})
}

func TestDailyGoal_Reset(t *testing.T) {
	goal := newTestGoal(2000, 1500)
	goal.MealCount = 3
	date := goal.Date

	goal.Reset()

	if goal.CaloriesConsumed != 0 || goal.MealCount != 0 {
		t.Errorf("expected zeroed counters, got consumed=%d count=%d", goal.CaloriesConsumed, goal.MealCount)
	}
	if goal.CalorieGoal != 2000 {
		t.Errorf("expected goal preserved, got %d", goal.CalorieGoal)
	}
	if !goal.Date.Equal(date) {
		t.Error("expected date preserved")
	}
}

func TestTruncateToDate(t *testing.T) {
	ts := time.Date(2024, 3, 10, 23, 59, 58, 123, time.FixedZone("X", 3*3600))
	got := TruncateToDate(ts)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
	if got.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", got.Location())
	}
}

func TestNewDailyGoal(t *testing.T) {
	userID := uuid.New()
	goal := NewDailyGoal(userID, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), 2200)

	if goal.UserID != userID {
		t.Error("expected user ID to be set")
	}
	if goal.Date.Hour() != 0 {
		t.Error("expected date truncated to midnight")
	}
	if goal.CaloriesConsumed != 0 || goal.MealCount != 0 {
		t.Error("expected fresh aggregate to start empty")
	}
}

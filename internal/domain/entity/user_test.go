// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"testing"
	"time"
)

func newTestUser(gender Gender, level ActivityLevel, goalType GoalType) *User {
	return &User{
		Name:          "Test User",
		PhoneNumber:   "+5511999990000",
		DateOfBirth:   time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		WeightKg:      80,
		HeightCm:      180,
		Gender:        gender,
		ActivityLevel: level,
		GoalType:      goalType,
	}
}

func TestComputeAge(t *testing.T) {
	dob := time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("uses calendar year difference only", func(t *testing.T) {
		// Birthday has not happened yet this year, the age still counts
		// the full year difference.
		today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		if got := ComputeAge(dob, today); got != 34 {
			t.Errorf("expected age 34, got %d", got)
		}
	})

	t.Run("same year yields zero", func(t *testing.T) {
		today := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
		if got := ComputeAge(dob, today); got != 0 {
			t.Errorf("expected age 0, got %d", got)
		}
	})
}

func TestUser_BMR(t *testing.T) {
	t.Run("male offset", func(t *testing.T) {
		user := newTestUser(GenderMale, ActivityModeratelyActive, GoalMaintainWeight)
		age := ComputeAge(user.DateOfBirth, time.Now())
		expected := 10*80.0 + 6.25*180.0 - 5*float64(age) + 5

		if got := user.BMR(); math.Abs(got-expected) > 0.001 {
			t.Errorf("expected BMR %.2f, got %.2f", expected, got)
		}
	})

	t.Run("female offset", func(t *testing.T) {
		user := newTestUser(GenderFemale, ActivityModeratelyActive, GoalMaintainWeight)
		age := ComputeAge(user.DateOfBirth, time.Now())
		expected := 10*80.0 + 6.25*180.0 - 5*float64(age) - 161

		if got := user.BMR(); math.Abs(got-expected) > 0.001 {
			t.Errorf("expected BMR %.2f, got %.2f", expected, got)
		}
	})
}

func TestUser_TDEE(t *testing.T) {
	cases := []struct {
		level      ActivityLevel
		multiplier float64
	}{
		{ActivitySedentary, 1.2},
		{ActivityLightlyActive, 1.375},
		{ActivityModeratelyActive, 1.55},
		{ActivityVeryActive, 1.725},
		{ActivityExtremelyActive, 1.9},
	}

	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			user := newTestUser(GenderMale, tc.level, GoalMaintainWeight)
			expected := user.BMR() * tc.multiplier

			if got := user.TDEE(); math.Abs(got-expected) > 0.001 {
				t.Errorf("expected TDEE %.2f, got %.2f", expected, got)
			}
		})
	}
}

func TestUser_CalculateDailyCalorieGoal(t *testing.T) {
	t.Run("lose weight subtracts 500", func(t *testing.T) {
		user := newTestUser(GenderMale, ActivityModeratelyActive, GoalLoseWeight)
		expected := int(math.Round(user.TDEE() - 500))

		if got := user.CalculateDailyCalorieGoal(); got != expected {
			t.Errorf("expected goal %d, got %d", expected, got)
		}
	})

	t.Run("maintain weight keeps TDEE", func(t *testing.T) {
		user := newTestUser(GenderMale, ActivityModeratelyActive, GoalMaintainWeight)
		expected := int(math.Round(user.TDEE()))

		if got := user.CalculateDailyCalorieGoal(); got != expected {
			t.Errorf("expected goal %d, got %d", expected, got)
		}
	})

	t.Run("gain weight adds 500", func(t *testing.T) {
		user := newTestUser(GenderMale, ActivityModeratelyActive, GoalGainWeight)
		expected := int(math.Round(user.TDEE() + 500))

		if got := user.CalculateDailyCalorieGoal(); got != expected {
			t.Errorf("expected goal %d, got %d", expected, got)
		}
	})

	t.Run("deterministic for identical profiles", func(t *testing.T) {
		a := newTestUser(GenderFemale, ActivityLightlyActive, GoalLoseWeight)
		b := newTestUser(GenderFemale, ActivityLightlyActive, GoalLoseWeight)

		if a.CalculateDailyCalorieGoal() != b.CalculateDailyCalorieGoal() {
			t.Error("expected identical profiles to produce identical goals")
		}
	})
}

func TestUser_UpdateCalorieGoal(t *testing.T) {
	user := newTestUser(GenderMale, ActivitySedentary, GoalMaintainWeight)
	user.DailyCalorieGoal = user.CalculateDailyCalorieGoal()
	before := user.DailyCalorieGoal

	user.ActivityLevel = ActivityExtremelyActive
	user.UpdateCalorieGoal()

	if user.DailyCalorieGoal <= before {
		t.Errorf("expected recomputed goal above %d, got %d", before, user.DailyCalorieGoal)
	}
}

func TestIsValidGender(t *testing.T) {
	if !IsValidGender(GenderMale) || !IsValidGender(GenderFemale) {
		t.Error("expected male and female to be valid")
	}
	if IsValidGender(Gender("other")) {
		t.Error("expected unknown gender to be invalid")
	}
}

func TestIsValidActivityLevel(t *testing.T) {
	for _, level := range []ActivityLevel{ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive} {
		if !IsValidActivityLevel(level) {
			t.Errorf("expected %s to be valid", level)
		}
	}
	if IsValidActivityLevel(ActivityLevel("couch")) {
		t.Error("expected unknown level to be invalid")
	}
}

func TestIsValidGoalType(t *testing.T) {
	for _, goalType := range []GoalType{GoalLoseWeight, GoalMaintainWeight, GoalGainWeight} {
		if !IsValidGoalType(goalType) {
			t.Errorf("expected %s to be valid", goalType)
		}
	}
	if IsValidGoalType(GoalType("bulk")) {
		t.Error("expected unknown goal type to be invalid")
	}
}

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

func TestDailyGoalRepository(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("create then find by user and date", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewDailyGoalRepository(db)
		user := seedUser(t, db, "+5511999991001")

		goal := entity.NewDailyGoal(user.ID, date, 2200)
		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		found, err := repo.FindByUserAndDate(ctx, user.ID, date)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.CalorieGoal != 2200 {
			t.Errorf("expected goal 2200, got %d", found.CalorieGoal)
		}
		if found.CaloriesConsumed != 0 || found.MealCount != 0 {
			t.Errorf("expected fresh counters, got %d/%d", found.CaloriesConsumed, found.MealCount)
		}
	})

	t.Run("find truncates the lookup date to midnight", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewDailyGoalRepository(db)
		user := seedUser(t, db, "+5511999991002")

		if err := repo.Create(ctx, entity.NewDailyGoal(user.ID, date, 2000)); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		afternoon := date.Add(14*time.Hour + 30*time.Minute)
		found, err := repo.FindByUserAndDate(ctx, user.ID, afternoon)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !found.Date.Equal(date) {
			t.Errorf("expected date %s, got %s", date, found.Date)
		}
	})

	t.Run("second insert for the same day conflicts", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewDailyGoalRepository(db)
		user := seedUser(t, db, "+5511999991003")

		if err := repo.Create(ctx, entity.NewDailyGoal(user.ID, date, 2000)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		err := repo.Create(ctx, entity.NewDailyGoal(user.ID, date, 2000))
		if !errors.Is(err, domainerror.ErrDailyGoalConflict) {
			t.Errorf("expected ErrDailyGoalConflict, got %v", err)
		}
	})

	t.Run("same day for different users does not conflict", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewDailyGoalRepository(db)
		first := seedUser(t, db, "+5511999991004")
		second := seedUser(t, db, "+5511999991005")

		if err := repo.Create(ctx, entity.NewDailyGoal(first.ID, date, 2000)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := repo.Create(ctx, entity.NewDailyGoal(second.ID, date, 2500)); err != nil {
			t.Errorf("expected no conflict across users, got %v", err)
		}
	})

	t.Run("missing day maps to not found", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewDailyGoalRepository(db)
		user := seedUser(t, db, "+5511999991006")

		if _, err := repo.FindByUserAndDate(ctx, user.ID, date); !errors.Is(err, domainerror.ErrDailyGoalNotFound) {
			t.Errorf("expected ErrDailyGoalNotFound, got %v", err)
		}
	})

	t.Run("update persists consumed counters", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewDailyGoalRepository(db)
		user := seedUser(t, db, "+5511999991007")

		goal := entity.NewDailyGoal(user.ID, date, 2000)
		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		goal.AddMeal(450)
		goal.AddMeal(300)
		if err := repo.Update(ctx, goal); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		found, err := repo.FindByUserAndDate(ctx, user.ID, date)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.CaloriesConsumed != 750 {
			t.Errorf("expected 750 consumed, got %d", found.CaloriesConsumed)
		}
		if found.MealCount != 2 {
			t.Errorf("expected 2 meals, got %d", found.MealCount)
		}
	})

	t.Run("range query returns only rows inside the window newest first", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewDailyGoalRepository(db)
		user := seedUser(t, db, "+5511999991008")

		for _, day := range []int{3, 5, 8, 10} {
			goal := entity.NewDailyGoal(user.ID, time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC), 2000)
			if err := repo.Create(ctx, goal); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}

		start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		goals, err := repo.FindByUserAndDateRange(ctx, user.ID, start, end)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(goals) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(goals))
		}
		for i, wantDay := range []int{10, 8, 5} {
			if goals[i].Date.Day() != wantDay {
				t.Errorf("row %d: expected day %d, got %d", i, wantDay, goals[i].Date.Day())
			}
		}
	})
}

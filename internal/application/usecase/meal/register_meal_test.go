// Package meal contains meal-related use cases.
package meal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// fakeUserRepository implements adapter.UserRepository for use case tests.
type fakeUserRepository struct {
	users map[string]*entity.User
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.PhoneNumber] = u
	}
	return repo
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.users[user.PhoneNumber] = user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindActiveByPhoneNumber(_ context.Context, phoneNumber string) (*entity.User, error) {
	u, ok := r.users[phoneNumber]
	if !ok || !u.IsActive {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) FindByPhoneNumber(_ context.Context, phoneNumber string) (*entity.User, error) {
	u, ok := r.users[phoneNumber]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	r.users[user.PhoneNumber] = user
	return nil
}

func (r *fakeUserRepository) ExistsByPhoneNumber(_ context.Context, phoneNumber string) (bool, error) {
	_, ok := r.users[phoneNumber]
	return ok, nil
}

// fakeMealRepository implements adapter.MealRepository for use case tests.
type fakeMealRepository struct {
	meals      map[uuid.UUID]*entity.Meal
	goals      map[string]*entity.DailyGoal
	todayCount int64
	createErr  error
}

func newFakeMealRepository() *fakeMealRepository {
	return &fakeMealRepository{
		meals: make(map[uuid.UUID]*entity.Meal),
		goals: make(map[string]*entity.DailyGoal),
	}
}

func goalKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + "/" + entity.TruncateToDate(date).Format("2006-01-02")
}

func (r *fakeMealRepository) CreateWithGoalCredit(_ context.Context, meal *entity.Meal, calorieGoal int) (*entity.DailyGoal, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.meals[meal.ID] = meal

	// Mirrors the real store: credit goes to today's aggregate, not the meal's date.
	today := time.Now().UTC()
	key := goalKey(meal.UserID, today)
	goal, ok := r.goals[key]
	if !ok {
		goal = entity.NewDailyGoal(meal.UserID, entity.TruncateToDate(today), calorieGoal)
		r.goals[key] = goal
	}
	goal.AddMeal(meal.Calories)
	return goal, nil
}

func (r *fakeMealRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Meal, error) {
	meal, ok := r.meals[id]
	if !ok {
		return nil, domainerror.ErrMealNotFound
	}
	return meal, nil
}

func (r *fakeMealRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Meal, error) {
	var meals []*entity.Meal
	for _, m := range r.meals {
		if m.UserID == userID {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

func (r *fakeMealRepository) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Meal, error) {
	var meals []*entity.Meal
	for _, m := range r.meals {
		if m.UserID == userID && !m.MealDate.Before(start) && m.MealDate.Before(end) {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

func (r *fakeMealRepository) CountByUserOnDate(_ context.Context, _ uuid.UUID, _ time.Time) (int64, error) {
	return r.todayCount, nil
}

func (r *fakeMealRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.meals, id)
	return nil
}

func activeTestUser() *entity.User {
	return &entity.User{
		ID:               uuid.New(),
		Name:             "Maria",
		PhoneNumber:      "+5511988887777",
		DailyCalorieGoal: 2000,
		IsActive:         true,
	}
}

func intPtr(v int) *int { return &v }

func TestRegisterMealUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("registers meal and credits the daily goal", func(t *testing.T) {
		user := activeTestUser()
		mealRepo := newFakeMealRepository()
		uc := NewRegisterMealUseCase(mealRepo, newFakeUserRepository(user), 10)

		output, err := uc.Execute(ctx, RegisterMealInput{
			PhoneNumber: user.PhoneNumber,
			Description: "grilled chicken with rice",
			MealType:    entity.MealTypeLunch,
			Calories:    intPtr(650),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Meal.Calories != 650 {
			t.Errorf("expected 650 calories, got %d", output.Meal.Calories)
		}
		if output.Goal.CaloriesConsumed != 650 {
			t.Errorf("expected goal credited with 650, got %d", output.Goal.CaloriesConsumed)
		}
		if output.Goal.MealCount != 1 {
			t.Errorf("expected meal count 1, got %d", output.Goal.MealCount)
		}
		if output.Goal.CalorieGoal != user.DailyCalorieGoal {
			t.Errorf("expected aggregate seeded with %d, got %d", user.DailyCalorieGoal, output.Goal.CalorieGoal)
		}
	})

	t.Run("missing calories is a validation error", func(t *testing.T) {
		user := activeTestUser()
		uc := NewRegisterMealUseCase(newFakeMealRepository(), newFakeUserRepository(user), 10)

		_, err := uc.Execute(ctx, RegisterMealInput{
			PhoneNumber: user.PhoneNumber,
			Description: "grilled chicken with rice",
			MealType:    entity.MealTypeLunch,
		})

		var mealErr *domainerror.MealError
		if !errors.As(err, &mealErr) || mealErr.Code != domainerror.ErrCodeMissingCalories {
			t.Fatalf("expected missing calories error, got %v", err)
		}
	})

	t.Run("calories out of range", func(t *testing.T) {
		user := activeTestUser()
		uc := NewRegisterMealUseCase(newFakeMealRepository(), newFakeUserRepository(user), 10)

		for _, calories := range []int{0, 5001, -10} {
			_, err := uc.Execute(ctx, RegisterMealInput{
				PhoneNumber: user.PhoneNumber,
				Description: "grilled chicken with rice",
				MealType:    entity.MealTypeLunch,
				Calories:    intPtr(calories),
			})

			var mealErr *domainerror.MealError
			if !errors.As(err, &mealErr) || mealErr.Code != domainerror.ErrCodeInvalidCalories {
				t.Fatalf("expected invalid calories error for %d, got %v", calories, err)
			}
		}
	})

	t.Run("description out of range", func(t *testing.T) {
		user := activeTestUser()
		uc := NewRegisterMealUseCase(newFakeMealRepository(), newFakeUserRepository(user), 10)

		_, err := uc.Execute(ctx, RegisterMealInput{
			PhoneNumber: user.PhoneNumber,
			Description: "ab",
			MealType:    entity.MealTypeLunch,
			Calories:    intPtr(500),
		})

		var mealErr *domainerror.MealError
		if !errors.As(err, &mealErr) || mealErr.Code != domainerror.ErrCodeInvalidDescription {
			t.Fatalf("expected invalid description error, got %v", err)
		}
	})

	t.Run("negative macro is rejected", func(t *testing.T) {
		user := activeTestUser()
		uc := NewRegisterMealUseCase(newFakeMealRepository(), newFakeUserRepository(user), 10)

		negative := decimal.NewFromInt(-5)
		_, err := uc.Execute(ctx, RegisterMealInput{
			PhoneNumber: user.PhoneNumber,
			Description: "grilled chicken with rice",
			MealType:    entity.MealTypeLunch,
			Calories:    intPtr(500),
			Protein:     &negative,
		})

		var mealErr *domainerror.MealError
		if !errors.As(err, &mealErr) || mealErr.Code != domainerror.ErrCodeNegativeMacro {
			t.Fatalf("expected negative macro error, got %v", err)
		}
	})

	t.Run("daily limit blocks before persistence", func(t *testing.T) {
		user := activeTestUser()
		mealRepo := newFakeMealRepository()
		mealRepo.todayCount = 10
		uc := NewRegisterMealUseCase(mealRepo, newFakeUserRepository(user), 10)

		_, err := uc.Execute(ctx, RegisterMealInput{
			PhoneNumber: user.PhoneNumber,
			Description: "grilled chicken with rice",
			MealType:    entity.MealTypeLunch,
			Calories:    intPtr(500),
		})

		var mealErr *domainerror.MealError
		if !errors.As(err, &mealErr) || mealErr.Code != domainerror.ErrCodeDailyLimitExceeded {
			t.Fatalf("expected daily limit error, got %v", err)
		}
		if len(mealRepo.meals) != 0 {
			t.Error("expected no meal persisted when the limit is hit")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := NewRegisterMealUseCase(newFakeMealRepository(), newFakeUserRepository(), 10)

		_, err := uc.Execute(ctx, RegisterMealInput{
			PhoneNumber: "+5511900000000",
			Description: "grilled chicken with rice",
			MealType:    entity.MealTypeLunch,
			Calories:    intPtr(500),
		})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) || userErr.Code != domainerror.ErrCodeUserNotFound {
			t.Fatalf("expected user not found error, got %v", err)
		}
	})

	t.Run("inactive user is not found", func(t *testing.T) {
		user := activeTestUser()
		user.IsActive = false
		uc := NewRegisterMealUseCase(newFakeMealRepository(), newFakeUserRepository(user), 10)

		_, err := uc.Execute(ctx, RegisterMealInput{
			PhoneNumber: user.PhoneNumber,
			Description: "grilled chicken with rice",
			MealType:    entity.MealTypeLunch,
			Calories:    intPtr(500),
		})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) || userErr.Code != domainerror.ErrCodeUserNotFound {
			t.Fatalf("expected user not found error, got %v", err)
		}
	})

	t.Run("two meals accumulate on the same aggregate", func(t *testing.T) {
		user := activeTestUser()
		mealRepo := newFakeMealRepository()
		uc := NewRegisterMealUseCase(mealRepo, newFakeUserRepository(user), 10)

		date := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		for _, calories := range []int{400, 350} {
			_, err := uc.Execute(ctx, RegisterMealInput{
				PhoneNumber: user.PhoneNumber,
				Description: "meal of the day",
				MealType:    entity.MealTypeLunch,
				Calories:    intPtr(calories),
				MealDate:    &date,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		goal := mealRepo.goals[goalKey(user.ID, time.Now().UTC())]
		if goal == nil {
			t.Fatal("expected today's aggregate")
		}
		if goal.CaloriesConsumed != 750 || goal.MealCount != 2 {
			t.Errorf("expected 750/2, got %d/%d", goal.CaloriesConsumed, goal.MealCount)
		}
	})
}

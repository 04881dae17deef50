// Package meal contains meal-related use cases.
package meal

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// fakeEstimator implements adapter.NutritionEstimator for use case tests.
type fakeEstimator struct {
	estimate *entity.NutritionEstimate
	err      error
}

func (e *fakeEstimator) EstimateNutrition(_ context.Context, _ string) (*entity.NutritionEstimate, error) {
	return e.estimate, e.err
}

func (e *fakeEstimator) GenerateCoachResponse(_ context.Context, _, _ string) (string, error) {
	return "", errors.New("not implemented")
}

func (e *fakeEstimator) IsAvailable() bool {
	return true
}

func TestRegisterMealFromDescriptionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("structured estimate carries macros into the meal", func(t *testing.T) {
		user := activeTestUser()
		mealRepo := newFakeMealRepository()
		registerUC := NewRegisterMealUseCase(mealRepo, newFakeUserRepository(user), 10)
		estimator := &fakeEstimator{estimate: &entity.NutritionEstimate{
			Calories:      650,
			Protein:       decimal.NewFromFloat(42.5),
			Carbohydrates: decimal.NewFromFloat(60),
			Fat:           decimal.NewFromFloat(18),
			Confidence:    0.9,
			Tier:          entity.TierStructured,
		}}
		uc := NewRegisterMealFromDescriptionUseCase(estimator, registerUC)

		output, err := uc.Execute(ctx, RegisterMealFromDescriptionInput{
			PhoneNumber: user.PhoneNumber,
			Description: "grilled chicken with rice and beans",
			MealType:    entity.MealTypeLunch,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Meal.Calories != 650 {
			t.Errorf("expected 650 calories, got %d", output.Meal.Calories)
		}
		if output.Meal.Protein == nil || !output.Meal.Protein.Equal(decimal.NewFromFloat(42.5)) {
			t.Errorf("expected protein 42.5, got %v", output.Meal.Protein)
		}
		if output.Estimate.Tier != entity.TierStructured {
			t.Errorf("expected structured tier, got %s", output.Estimate.Tier)
		}
		if output.Goal.CaloriesConsumed != 650 {
			t.Errorf("expected goal credited with 650, got %d", output.Goal.CaloriesConsumed)
		}
	})

	t.Run("degraded estimate registers calories without macros", func(t *testing.T) {
		user := activeTestUser()
		registerUC := NewRegisterMealUseCase(newFakeMealRepository(), newFakeUserRepository(user), 10)
		estimator := &fakeEstimator{estimate: &entity.NutritionEstimate{
			Calories:   520,
			Confidence: 0.5,
			Tier:       entity.TierDegraded,
		}}
		uc := NewRegisterMealFromDescriptionUseCase(estimator, registerUC)

		output, err := uc.Execute(ctx, RegisterMealFromDescriptionInput{
			PhoneNumber: user.PhoneNumber,
			Description: "something hearty for lunch",
			MealType:    entity.MealTypeLunch,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Meal.Calories != 520 {
			t.Errorf("expected 520 calories, got %d", output.Meal.Calories)
		}
		if output.Meal.Protein != nil || output.Meal.Carbohydrates != nil || output.Meal.Fat != nil {
			t.Error("expected no macros on a degraded estimate")
		}
	})

	t.Run("estimator failure aborts registration", func(t *testing.T) {
		user := activeTestUser()
		mealRepo := newFakeMealRepository()
		registerUC := NewRegisterMealUseCase(mealRepo, newFakeUserRepository(user), 10)
		estimator := &fakeEstimator{err: errors.New("generation failed")}
		uc := NewRegisterMealFromDescriptionUseCase(estimator, registerUC)

		_, err := uc.Execute(ctx, RegisterMealFromDescriptionInput{
			PhoneNumber: user.PhoneNumber,
			Description: "grilled chicken with rice",
			MealType:    entity.MealTypeLunch,
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(mealRepo.meals) != 0 {
			t.Error("expected no meal persisted when estimation fails")
		}
	})
}

// Package meal contains meal-related use cases.
package meal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
)

// RegisterMealFromDescriptionInput represents the input for AI-assisted
// meal registration.
type RegisterMealFromDescriptionInput struct {
	PhoneNumber string
	Description string
	MealType    entity.MealType
	MealDate    *time.Time
	Notes       *string
}

// RegisterMealFromDescriptionOutput represents the output of AI-assisted
// meal registration.
type RegisterMealFromDescriptionOutput struct {
	Meal     *entity.Meal
	Goal     *entity.DailyGoal
	Estimate *entity.NutritionEstimate
}

// RegisterMealFromDescriptionUseCase estimates nutrition from the free-text
// description and delegates the actual registration to RegisterMealUseCase.
type RegisterMealFromDescriptionUseCase struct {
	estimator  adapter.NutritionEstimator
	registerUC *RegisterMealUseCase
}

// NewRegisterMealFromDescriptionUseCase creates a new instance.
func NewRegisterMealFromDescriptionUseCase(
	estimator adapter.NutritionEstimator,
	registerUC *RegisterMealUseCase,
) *RegisterMealFromDescriptionUseCase {
	return &RegisterMealFromDescriptionUseCase{
		estimator:  estimator,
		registerUC: registerUC,
	}
}

// Execute estimates the meal's nutrition and registers it.
func (uc *RegisterMealFromDescriptionUseCase) Execute(
	ctx context.Context,
	input RegisterMealFromDescriptionInput,
) (*RegisterMealFromDescriptionOutput, error) {
	estimate, err := uc.estimator.EstimateNutrition(ctx, input.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate nutrition: %w", err)
	}

	slog.Info("Nutrition estimated from description",
		"calories", estimate.Calories,
		"confidence", estimate.Confidence,
		"tier", estimate.Tier,
	)

	calories := estimate.Calories
	registerInput := RegisterMealInput{
		PhoneNumber: input.PhoneNumber,
		Description: input.Description,
		MealType:    input.MealType,
		Calories:    &calories,
		MealDate:    input.MealDate,
		Notes:       input.Notes,
	}
	if estimate.Tier == entity.TierStructured {
		protein := estimate.Protein
		carbs := estimate.Carbohydrates
		fat := estimate.Fat
		registerInput.Protein = &protein
		registerInput.Carbohydrates = &carbs
		registerInput.Fat = &fat
	}

	output, err := uc.registerUC.Execute(ctx, registerInput)
	if err != nil {
		return nil, err
	}

	return &RegisterMealFromDescriptionOutput{
		Meal:     output.Meal,
		Goal:     output.Goal,
		Estimate: estimate,
	}, nil
}

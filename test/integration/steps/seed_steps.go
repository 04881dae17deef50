package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/fitness-partner/backend/internal/application/usecase/dailygoal"
	usermgmt "github.com/fitness-partner/backend/internal/application/usecase/user"
	"github.com/fitness-partner/backend/internal/domain/entity"
)

// registerSeedSteps registers steps that prepare backend state directly.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user with phone "([^"]*)"$`, aRegisteredUserWithPhone)
	ctx.Step(`^user "([^"]*)" already consumed (\d+) calories today$`, userAlreadyConsumedCaloriesToday)
	ctx.Step(`^the AI estimates "([^"]*)" as (\d+) calories$`, theAIEstimatesAsCalories)
	ctx.Step(`^the AI service is down$`, theAIServiceIsDown)
}

func aRegisteredUserWithPhone(ctx context.Context, phone string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := tc.createUserUseCase.Execute(context.Background(), usermgmt.CreateUserInput{
		Name:          "Usuario de Teste",
		PhoneNumber:   phone,
		DateOfBirth:   time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		WeightKg:      80,
		HeightCm:      180,
		Gender:        entity.GenderMale,
		ActivityLevel: entity.ActivityModeratelyActive,
		GoalType:      entity.GoalLoseWeight,
	})
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}
	return nil
}

func userAlreadyConsumedCaloriesToday(ctx context.Context, phone string, calories int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := tc.addCaloriesUseCase.Execute(context.Background(), dailygoal.AddCaloriesInput{
		PhoneNumber: phone,
		Calories:    calories,
	})
	if err != nil {
		return fmt.Errorf("failed to seed consumed calories: %w", err)
	}
	return nil
}

func theAIEstimatesAsCalories(ctx context.Context, description string, calories int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.ai.ScriptEstimate(description, calories)
	return nil
}

func theAIServiceIsDown(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.ai.SetFailing(true)
	return nil
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/fitness-partner/backend/internal/application/usecase/ai"
	"github.com/fitness-partner/backend/internal/application/usecase/dailygoal"
	"github.com/fitness-partner/backend/internal/application/usecase/meal"
	"github.com/fitness-partner/backend/internal/application/usecase/user"
	"github.com/fitness-partner/backend/internal/infra/server/router"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/controller"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/middleware"
	"github.com/fitness-partner/backend/internal/integration/persistence"
	"github.com/fitness-partner/backend/test/integration/mock"
)

const testMaxDailyMeals = 10

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Backends
	db *mock.Db
	ai *mock.AIService

	// Seeding
	createUserUseCase  *user.CreateUserUseCase
	addCaloriesUseCase *dailygoal.AddCaloriesUseCase
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// The AI rate limiter is bypassed in the test environment.
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires the full application against the shared in-memory
// database and a scripted AI service.
func newTestContext() (*TestContext, error) {
	db := mock.NewDb()
	if err := db.ClearDB(); err != nil {
		return nil, fmt.Errorf("failed to clear database: %w", err)
	}

	aiService := mock.NewAIService()

	userRepo := persistence.NewUserRepository(db.DbConn)
	mealRepo := persistence.NewMealRepository(db.DbConn)
	goalRepo := persistence.NewDailyGoalRepository(db.DbConn)
	conversationRepo := persistence.NewConversationRepository(db.DbConn)

	createUserUC := user.NewCreateUserUseCase(userRepo)
	getUserUC := user.NewGetUserUseCase(userRepo)
	updateUserUC := user.NewUpdateUserUseCase(userRepo)
	deactivateUserUC := user.NewDeactivateUserUseCase(userRepo)

	registerMealUC := meal.NewRegisterMealUseCase(mealRepo, userRepo, testMaxDailyMeals)
	registerFromDescUC := meal.NewRegisterMealFromDescriptionUseCase(aiService, registerMealUC)
	listMealsUC := meal.NewListMealsUseCase(mealRepo, userRepo)
	getMealUC := meal.NewGetMealUseCase(mealRepo, userRepo)
	deleteMealUC := meal.NewDeleteMealUseCase(mealRepo, userRepo)

	getGoalUC := dailygoal.NewGetDailyGoalUseCase(goalRepo, userRepo)
	addCaloriesUC := dailygoal.NewAddCaloriesUseCase(goalRepo, userRepo)
	resetGoalUC := dailygoal.NewResetDailyGoalUseCase(goalRepo, userRepo)
	goalHistoryUC := dailygoal.NewGetGoalHistoryUseCase(goalRepo, userRepo)

	estimateUC := ai.NewEstimateCaloriesUseCase(aiService, nil, time.Second)
	askCoachUC := ai.NewAskCoachUseCase(aiService, conversationRepo, userRepo, time.Second)

	healthController := controller.NewHealthController(func() bool { return true })
	userController := controller.NewUserController(createUserUC, getUserUC, updateUserUC, deactivateUserUC)
	mealController := controller.NewMealController(registerMealUC, registerFromDescUC, listMealsUC, getMealUC, deleteMealUC)
	dailyGoalController := controller.NewDailyGoalController(getGoalUC, addCaloriesUC, resetGoalUC, goalHistoryUC)
	aiController := controller.NewAIController(estimateUC, askCoachUC)

	r := router.NewRouter(
		healthController,
		userController,
		mealController,
		dailyGoalController,
		aiController,
		middleware.NewRateLimiter(),
	)

	tc := &TestContext{
		requestHeaders:     make(map[string]string),
		db:                 db,
		ai:                 aiService,
		createUserUseCase:  createUserUC,
		addCaloriesUseCase: addCaloriesUC,
	}
	tc.server = httptest.NewServer(r.Setup("test"))
	return tc, nil
}

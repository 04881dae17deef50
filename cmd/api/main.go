// Package main is the entry point for the Fitness Partner API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fitness-partner/backend/config"
	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/application/usecase/ai"
	"github.com/fitness-partner/backend/internal/application/usecase/dailygoal"
	"github.com/fitness-partner/backend/internal/application/usecase/meal"
	"github.com/fitness-partner/backend/internal/application/usecase/user"
	"github.com/fitness-partner/backend/internal/infra/db"
	"github.com/fitness-partner/backend/internal/infra/server/router"
	"github.com/fitness-partner/backend/internal/integration/adapters"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/controller"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/middleware"
	"github.com/fitness-partner/backend/internal/integration/persistence"
	"github.com/fitness-partner/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Fitness Partner API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
		database = nil
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.MealModel{},
			&model.DailyGoalModel{},
			&model.ConversationModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	var userController *controller.UserController
	var mealController *controller.MealController
	var dailyGoalController *controller.DailyGoalController
	var aiController *controller.AIController
	var aiRateLimiter *middleware.RateLimiter

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		mealRepo := persistence.NewMealRepository(database.DB())
		goalRepo := persistence.NewDailyGoalRepository(database.DB())
		conversationRepo := persistence.NewConversationRepository(database.DB())

		// Create adapters/services
		geminiService := adapters.NewGeminiService(
			cfg.Gemini.APIKey,
			cfg.Gemini.Model,
			float32(cfg.Gemini.Temperature),
			cfg.Gemini.SystemPrompt,
		)
		if !geminiService.IsAvailable() {
			slog.Warn("Gemini API key not configured, estimation endpoints will fail")
		}

		estimateCache := newEstimateCache(&cfg.Redis)

		// Create user use cases
		createUserUseCase := user.NewCreateUserUseCase(userRepo)
		getUserUseCase := user.NewGetUserUseCase(userRepo)
		updateUserUseCase := user.NewUpdateUserUseCase(userRepo)
		deactivateUserUseCase := user.NewDeactivateUserUseCase(userRepo)

		// Create meal use cases
		registerMealUseCase := meal.NewRegisterMealUseCase(mealRepo, userRepo, cfg.Fitness.MaxDailyMeals)
		registerFromDescUseCase := meal.NewRegisterMealFromDescriptionUseCase(geminiService, registerMealUseCase)
		listMealsUseCase := meal.NewListMealsUseCase(mealRepo, userRepo)
		getMealUseCase := meal.NewGetMealUseCase(mealRepo, userRepo)
		deleteMealUseCase := meal.NewDeleteMealUseCase(mealRepo, userRepo)

		// Create daily goal use cases
		getDailyGoalUseCase := dailygoal.NewGetDailyGoalUseCase(goalRepo, userRepo)
		addCaloriesUseCase := dailygoal.NewAddCaloriesUseCase(goalRepo, userRepo)
		resetDailyGoalUseCase := dailygoal.NewResetDailyGoalUseCase(goalRepo, userRepo)
		goalHistoryUseCase := dailygoal.NewGetGoalHistoryUseCase(goalRepo, userRepo)

		// Create AI use cases
		estimateCaloriesUseCase := ai.NewEstimateCaloriesUseCase(geminiService, estimateCache, cfg.Gemini.Timeout)
		askCoachUseCase := ai.NewAskCoachUseCase(geminiService, conversationRepo, userRepo, cfg.Gemini.Timeout)

		// Create controllers
		userController = controller.NewUserController(
			createUserUseCase,
			getUserUseCase,
			updateUserUseCase,
			deactivateUserUseCase,
		)
		mealController = controller.NewMealController(
			registerMealUseCase,
			registerFromDescUseCase,
			listMealsUseCase,
			getMealUseCase,
			deleteMealUseCase,
		)
		dailyGoalController = controller.NewDailyGoalController(
			getDailyGoalUseCase,
			addCaloriesUseCase,
			resetDailyGoalUseCase,
			goalHistoryUseCase,
		)
		aiController = controller.NewAIController(estimateCaloriesUseCase, askCoachUseCase)

		aiRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Fitness.AIRateLimit, cfg.Fitness.AIRateLimitWindow)

		slog.Info("Application components initialized successfully")
	} else {
		slog.Warn("API routes not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		userController,
		mealController,
		dailyGoalController,
		aiController,
		aiRateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newEstimateCache connects the Redis-backed cache. A bad Redis URL is not
// fatal: the use case treats a nil cache as a pass-through.
func newEstimateCache(cfg *config.RedisConfig) adapter.EstimateCache {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, estimate cache disabled", "error", err)
		return nil
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	client := redis.NewClient(opts)
	return adapters.NewRedisEstimateCache(client, cfg.EstimateTTL)
}

// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fitness-partner/backend/internal/integration/entrypoint/controller"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	userController      *controller.UserController
	mealController      *controller.MealController
	dailyGoalController *controller.DailyGoalController
	aiController        *controller.AIController
	aiRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	mealController *controller.MealController,
	dailyGoalController *controller.DailyGoalController,
	aiController *controller.AIController,
	aiRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		userController:      userController,
		mealController:      mealController,
		dailyGoalController: dailyGoalController,
		aiController:        aiController,
		aiRateLimiter:       aiRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.userController != nil {
			users := v1.Group("/users")
			{
				users.POST("", r.userController.Create)
				users.GET("/:phone", r.userController.Get)
				users.PATCH("/:phone", r.userController.Update)
				users.DELETE("/:phone", r.userController.Deactivate)
			}
		}

		if r.mealController != nil {
			meals := v1.Group("/meals")
			{
				meals.POST("", r.mealController.Register)
				meals.GET("", r.mealController.List)
				meals.GET("/:id", r.mealController.Get)
				meals.DELETE("/:id", r.mealController.Delete)
			}
			// Registration from description goes through the generation
			// pipeline, so it shares the AI rate limit.
			if r.aiRateLimiter != nil {
				meals.POST("/from-description", r.aiRateLimiter.Middleware(), r.mealController.RegisterFromDescription)
			} else {
				meals.POST("/from-description", r.mealController.RegisterFromDescription)
			}
		}

		if r.dailyGoalController != nil {
			goals := v1.Group("/daily-goals")
			{
				goals.GET("", r.dailyGoalController.Get)
				goals.GET("/history", r.dailyGoalController.History)
				goals.POST("/calories", r.dailyGoalController.AddCalories)
				goals.POST("/reset", r.dailyGoalController.Reset)
			}
		}

		if r.aiController != nil {
			aiGroup := v1.Group("/ai")
			if r.aiRateLimiter != nil {
				aiGroup.Use(r.aiRateLimiter.Middleware())
			}
			{
				aiGroup.POST("/estimate", r.aiController.Estimate)
				aiGroup.POST("/coach", r.aiController.AskCoach)
			}
		}
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitness-partner/backend/internal/application/usecase/ai"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/dto"
)

// AIController handles the generation endpoints.
type AIController struct {
	estimateUseCase *ai.EstimateCaloriesUseCase
	coachUseCase    *ai.AskCoachUseCase
}

// NewAIController creates a new AI controller instance.
func NewAIController(
	estimateUseCase *ai.EstimateCaloriesUseCase,
	coachUseCase *ai.AskCoachUseCase,
) *AIController {
	return &AIController{
		estimateUseCase: estimateUseCase,
		coachUseCase:    coachUseCase,
	}
}

// Estimate handles POST /ai/estimate requests. The estimate is not persisted;
// it is the caller's input for a later registration.
func (c *AIController) Estimate(ctx *gin.Context) {
	var req dto.EstimateNutritionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := ai.EstimateCaloriesInput{
		Description: req.Description,
	}

	output, err := c.estimateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EstimateNutritionResponse{
		Estimate: dto.ToEstimateResponse(output.Estimate),
		Cached:   output.Cached,
	})
}

// AskCoach handles POST /ai/coach requests.
func (c *AIController) AskCoach(ctx *gin.Context) {
	var req dto.AskCoachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := ai.AskCoachInput{
		PhoneNumber: req.PhoneNumber,
		Question:    req.Question,
	}

	output, err := c.coachUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AskCoachResponse{
		Answer: output.Answer,
	})
}

// handleAIError handles generation errors and returns appropriate HTTP responses.
func (c *AIController) handleAIError(ctx *gin.Context, err error) {
	var estimationErr *domainerror.EstimationError
	if errors.As(err, &estimationErr) {
		ctx.JSON(statusCodeForEstimationError(estimationErr.Code), dto.ErrorResponse{
			Error: estimationErr.Message,
			Code:  string(estimationErr.Code),
		})
		return
	}

	var mealErr *domainerror.MealError
	if errors.As(err, &mealErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: mealErr.Message,
			Code:  string(mealErr.Code),
		})
		return
	}

	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		statusCode := http.StatusBadRequest
		if userErr.Code == domainerror.ErrCodeUserNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForEstimationError maps estimation error codes to HTTP status codes.
func statusCodeForEstimationError(code domainerror.EstimationErrorCode) int {
	switch code {
	case domainerror.ErrCodeAIUnavailable, domainerror.ErrCodeEmptyAIResponse:
		return http.StatusBadGateway
	case domainerror.ErrCodeEstimationFailed:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidQuestion:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

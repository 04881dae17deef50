// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fitness-partner/backend/internal/application/usecase/meal"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/dto"
)

// MealController handles meal endpoints.
type MealController struct {
	registerUseCase         *meal.RegisterMealUseCase
	registerFromDescUseCase *meal.RegisterMealFromDescriptionUseCase
	listUseCase             *meal.ListMealsUseCase
	getUseCase              *meal.GetMealUseCase
	deleteUseCase           *meal.DeleteMealUseCase
}

// NewMealController creates a new meal controller instance.
func NewMealController(
	registerUseCase *meal.RegisterMealUseCase,
	registerFromDescUseCase *meal.RegisterMealFromDescriptionUseCase,
	listUseCase *meal.ListMealsUseCase,
	getUseCase *meal.GetMealUseCase,
	deleteUseCase *meal.DeleteMealUseCase,
) *MealController {
	return &MealController{
		registerUseCase:         registerUseCase,
		registerFromDescUseCase: registerFromDescUseCase,
		listUseCase:             listUseCase,
		getUseCase:              getUseCase,
		deleteUseCase:           deleteUseCase,
	}
}

// Register handles POST /meals requests. Calories are provided by the caller.
func (c *MealController) Register(ctx *gin.Context) {
	var req dto.RegisterMealRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMealFields),
		})
		return
	}

	input := meal.RegisterMealInput{
		PhoneNumber:   req.PhoneNumber,
		Description:   req.Description,
		MealType:      entity.MealType(req.MealType),
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
		MealDate:      req.MealDate,
		Notes:         req.Notes,
		ImageURL:      req.ImageURL,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterMealResponse{
		Meal: dto.ToMealResponse(output.Meal),
		Goal: dto.ToDailyGoalResponse(output.Goal),
	})
}

// RegisterFromDescription handles POST /meals/from-description requests.
// Nutrition values are estimated from the free-text description.
func (c *MealController) RegisterFromDescription(ctx *gin.Context) {
	var req dto.RegisterMealFromDescriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMealFields),
		})
		return
	}

	input := meal.RegisterMealFromDescriptionInput{
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
		MealType:    entity.MealType(req.MealType),
		MealDate:    req.MealDate,
		Notes:       req.Notes,
	}

	output, err := c.registerFromDescUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterMealFromDescriptionResponse{
		Meal:     dto.ToMealResponse(output.Meal),
		Goal:     dto.ToDailyGoalResponse(output.Goal),
		Estimate: dto.ToEstimateResponse(output.Estimate),
	})
}

// List handles GET /meals requests. Optional start_date and end_date query
// parameters narrow the window.
func (c *MealController) List(ctx *gin.Context) {
	phoneNumber := ctx.Query("phone")
	if phoneNumber == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing phone query parameter",
			Code:  string(domainerror.ErrCodeMissingMealFields),
		})
		return
	}

	input := meal.ListMealsInput{
		PhoneNumber: phoneNumber,
	}

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &start
	}

	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealListResponse(output.Meals))
}

// Get handles GET /meals/:id requests.
func (c *MealController) Get(ctx *gin.Context) {
	mealID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid meal ID format",
		})
		return
	}

	input := meal.GetMealInput{
		MealID:      mealID,
		PhoneNumber: ctx.Query("phone"),
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealResponse(output.Meal))
}

// Delete handles DELETE /meals/:id requests.
func (c *MealController) Delete(ctx *gin.Context) {
	mealID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid meal ID format",
		})
		return
	}

	input := meal.DeleteMealInput{
		MealID:      mealID,
		PhoneNumber: ctx.Query("phone"),
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleMealError handles meal errors and returns appropriate HTTP responses.
// User lookups surface UserError; AI-assisted registration surfaces EstimationError.
func (c *MealController) handleMealError(ctx *gin.Context, err error) {
	var mealErr *domainerror.MealError
	if errors.As(err, &mealErr) {
		statusCode := c.getStatusCodeForMealError(mealErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
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

	var estimationErr *domainerror.EstimationError
	if errors.As(err, &estimationErr) {
		ctx.JSON(statusCodeForEstimationError(estimationErr.Code), dto.ErrorResponse{
			Error: estimationErr.Message,
			Code:  string(estimationErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMealError maps meal error codes to HTTP status codes.
func (c *MealController) getStatusCodeForMealError(code domainerror.MealErrorCode) int {
	switch code {
	case domainerror.ErrCodeMealNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMealDoesNotBelongToUser:
		return http.StatusForbidden
	case domainerror.ErrCodeDailyLimitExceeded:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeMissingCalories,
		domainerror.ErrCodeInvalidCalories,
		domainerror.ErrCodeInvalidDescription,
		domainerror.ErrCodeInvalidMealType,
		domainerror.ErrCodeNegativeMacro,
		domainerror.ErrCodeMissingMealFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

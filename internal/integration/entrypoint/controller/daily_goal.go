// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitness-partner/backend/internal/application/usecase/dailygoal"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/dto"
)

// defaultHistoryDays is used when the days query parameter is absent.
const defaultHistoryDays = 7

// DailyGoalController handles daily goal endpoints.
type DailyGoalController struct {
	getUseCase     *dailygoal.GetDailyGoalUseCase
	addUseCase     *dailygoal.AddCaloriesUseCase
	resetUseCase   *dailygoal.ResetDailyGoalUseCase
	historyUseCase *dailygoal.GetGoalHistoryUseCase
}

// NewDailyGoalController creates a new daily goal controller instance.
func NewDailyGoalController(
	getUseCase *dailygoal.GetDailyGoalUseCase,
	addUseCase *dailygoal.AddCaloriesUseCase,
	resetUseCase *dailygoal.ResetDailyGoalUseCase,
	historyUseCase *dailygoal.GetGoalHistoryUseCase,
) *DailyGoalController {
	return &DailyGoalController{
		getUseCase:     getUseCase,
		addUseCase:     addUseCase,
		resetUseCase:   resetUseCase,
		historyUseCase: historyUseCase,
	}
}

// Get handles GET /daily-goals requests. The aggregate for the requested
// date is created on first access.
func (c *DailyGoalController) Get(ctx *gin.Context) {
	phoneNumber := ctx.Query("phone")
	if phoneNumber == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing phone query parameter",
		})
		return
	}

	input := dailygoal.GetDailyGoalInput{
		PhoneNumber: phoneNumber,
	}

	date, ok := parseOptionalDate(ctx, "date")
	if !ok {
		return
	}
	input.Date = date

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDailyGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyGoalResponse(output.Goal))
}

// AddCalories handles POST /daily-goals/calories requests.
func (c *DailyGoalController) AddCalories(ctx *gin.Context) {
	var req dto.AddCaloriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := dailygoal.AddCaloriesInput{
		PhoneNumber: req.PhoneNumber,
		Calories:    req.Calories,
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDailyGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyGoalResponse(output.Goal))
}

// Reset handles POST /daily-goals/reset requests. Resetting a date that was
// never tracked is a not-found error.
func (c *DailyGoalController) Reset(ctx *gin.Context) {
	var req dto.ResetDailyGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := dailygoal.ResetDailyGoalInput{
		PhoneNumber: req.PhoneNumber,
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.resetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDailyGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyGoalResponse(output.Goal))
}

// History handles GET /daily-goals/history requests. The list is sparse:
// days without activity have no entry.
func (c *DailyGoalController) History(ctx *gin.Context) {
	phoneNumber := ctx.Query("phone")
	if phoneNumber == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing phone query parameter",
		})
		return
	}

	days := defaultHistoryDays
	if daysStr := ctx.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid days parameter",
				Code:  string(domainerror.ErrCodeInvalidHistoryDays),
			})
			return
		}
		days = parsed
	}

	input := dailygoal.GetGoalHistoryInput{
		PhoneNumber: phoneNumber,
		Days:        days,
	}

	endDate, ok := parseOptionalDate(ctx, "end_date")
	if !ok {
		return
	}
	input.EndDate = endDate

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDailyGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyGoalHistoryResponse(output.Goals))
}

// parseOptionalDate reads a YYYY-MM-DD query parameter. A malformed value
// writes the error response and returns false.
func parseOptionalDate(ctx *gin.Context, name string) (*time.Time, bool) {
	value := ctx.Query(name)
	if value == "" {
		return nil, true
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &date, true
}

// handleDailyGoalError handles daily goal errors and returns appropriate HTTP responses.
func (c *DailyGoalController) handleDailyGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.DailyGoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForDailyGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
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

// getStatusCodeForDailyGoalError maps daily goal error codes to HTTP status codes.
func (c *DailyGoalController) getStatusCodeForDailyGoalError(code domainerror.DailyGoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeDailyGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDailyGoalConflict:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCalorieCredit, domainerror.ErrCodeInvalidHistoryDays:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

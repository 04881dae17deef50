// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitness-partner/backend/internal/application/usecase/user"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
	"github.com/fitness-partner/backend/internal/integration/entrypoint/dto"
)

// UserController handles user profile endpoints.
type UserController struct {
	createUseCase     *user.CreateUserUseCase
	getUseCase        *user.GetUserUseCase
	updateUseCase     *user.UpdateUserUseCase
	deactivateUseCase *user.DeactivateUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	getUseCase *user.GetUserUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deactivateUseCase *user.DeactivateUserUseCase,
) *UserController {
	return &UserController{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		deactivateUseCase: deactivateUseCase,
	}
}

// Create handles POST /users requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date_of_birth format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateOfBirth),
		})
		return
	}

	input := user.CreateUserInput{
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		DateOfBirth:   dateOfBirth,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		Gender:        entity.Gender(req.Gender),
		ActivityLevel: entity.ActivityLevel(req.ActivityLevel),
		GoalType:      entity.GoalType(req.GoalType),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// Get handles GET /users/:phone requests.
func (c *UserController) Get(ctx *gin.Context) {
	input := user.GetUserInput{
		PhoneNumber: ctx.Param("phone"),
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Update handles PATCH /users/:phone requests.
func (c *UserController) Update(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	input := user.UpdateUserInput{
		PhoneNumber: ctx.Param("phone"),
		Name:        req.Name,
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
	}
	if req.ActivityLevel != nil {
		level := entity.ActivityLevel(*req.ActivityLevel)
		input.ActivityLevel = &level
	}
	if req.GoalType != nil {
		goalType := entity.GoalType(*req.GoalType)
		input.GoalType = &goalType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Deactivate handles DELETE /users/:phone requests. The record is kept with
// the active flag off.
func (c *UserController) Deactivate(ctx *gin.Context) {
	input := user.DeactivateUserInput{
		PhoneNumber: ctx.Param("phone"),
	}

	_, err := c.deactivateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		statusCode := c.getStatusCodeForUserError(userErr.Code)
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

// getStatusCodeForUserError maps user error codes to HTTP status codes.
func (c *UserController) getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUserAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidWeight,
		domainerror.ErrCodeInvalidHeight,
		domainerror.ErrCodeInvalidDateOfBirth,
		domainerror.ErrCodeInvalidGender,
		domainerror.ErrCodeInvalidActivityLevel,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeCalorieGoalOutOfRange,
		domainerror.ErrCodeMissingUserFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

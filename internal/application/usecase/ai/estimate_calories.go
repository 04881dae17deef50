// Package ai contains AI-assisted use cases.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitness-partner/backend/internal/application/adapter"
	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// EstimateCaloriesInput represents the input for a nutrition estimation.
type EstimateCaloriesInput struct {
	Description string
}

// EstimateCaloriesOutput represents the output of a nutrition estimation.
type EstimateCaloriesOutput struct {
	Estimate *entity.NutritionEstimate
	Cached   bool
}

// EstimateCaloriesUseCase runs the estimation pipeline with a cache in front
// of the generation call. The external call has no timeout of its own, so the
// use case imposes one.
type EstimateCaloriesUseCase struct {
	estimator adapter.NutritionEstimator
	cache     adapter.EstimateCache
	timeout   time.Duration
}

// NewEstimateCaloriesUseCase creates a new EstimateCaloriesUseCase instance.
// cache may be nil when no cache backend is configured.
func NewEstimateCaloriesUseCase(
	estimator adapter.NutritionEstimator,
	cache adapter.EstimateCache,
	timeout time.Duration,
) *EstimateCaloriesUseCase {
	return &EstimateCaloriesUseCase{
		estimator: estimator,
		cache:     cache,
		timeout:   timeout,
	}
}

// Execute performs the estimation.
func (uc *EstimateCaloriesUseCase) Execute(ctx context.Context, input EstimateCaloriesInput) (*EstimateCaloriesOutput, error) {
	if len(input.Description) < 3 || len(input.Description) > 500 {
		return nil, domainerror.NewMealError(
			domainerror.ErrCodeInvalidDescription,
			"description must be between 3 and 500 characters",
			domainerror.ErrInvalidDescription,
		)
	}

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, input.Description)
		if err != nil {
			// Cache failures never block the estimation path.
			slog.Warn("Estimate cache lookup failed", "error", err)
		} else if cached != nil {
			return &EstimateCaloriesOutput{Estimate: cached, Cached: true}, nil
		}
	}

	callCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	estimate, err := uc.estimator.EstimateNutrition(callCtx, input.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate nutrition: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.Description, estimate); err != nil {
			slog.Warn("Estimate cache store failed", "error", err)
		}
	}

	return &EstimateCaloriesOutput{Estimate: estimate}, nil
}

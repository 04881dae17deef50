// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// NutritionEstimator defines the interface for AI-backed nutrition analysis.
type NutritionEstimator interface {
	// EstimateNutrition analyzes a free-text meal description and returns a
	// structured estimate. The Tier field on the result distinguishes a full
	// structured parse from the degraded calorie-only fallback.
	EstimateNutrition(ctx context.Context, description string) (*entity.NutritionEstimate, error)

	// GenerateCoachResponse answers a free-form fitness question, optionally
	// threading prior conversation context into the prompt. Returns the raw
	// generated text.
	GenerateCoachResponse(ctx context.Context, userMessage, priorContext string) (string, error)

	// IsAvailable checks if the AI service is configured.
	IsAvailable() bool
}

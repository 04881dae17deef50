// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// EstimateCache caches nutrition estimates keyed by meal description so
// repeated registrations of the same meal skip the generation call.
type EstimateCache interface {
	// Get returns the cached estimate for the description, or nil on a miss.
	Get(ctx context.Context, description string) (*entity.NutritionEstimate, error)

	// Set stores the estimate for the description.
	Set(ctx context.Context, description string, estimate *entity.NutritionEstimate) error
}

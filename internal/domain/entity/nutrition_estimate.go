// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// EstimateTier tags how a nutrition estimate was produced.
type EstimateTier string

const (
	// TierStructured means the AI returned parseable JSON with full macros.
	TierStructured EstimateTier = "structured"
	// TierDegraded means only a calorie figure could be recovered from free
	// text; macros are zero and confidence is fixed at 0.5.
	TierDegraded EstimateTier = "degraded"
)

// NutritionEstimate is the structured result of analyzing a meal description.
// Ephemeral: its values are copied into a Meal and never stored on their own.
type NutritionEstimate struct {
	Calories      int
	Protein       decimal.Decimal // grams
	Carbohydrates decimal.Decimal // grams
	Fat           decimal.Decimal // grams
	Explanation   string
	Confidence    float64 // 0.0 - 1.0
	Tier          EstimateTier
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

// EstimateNutritionRequest represents the request body for nutrition estimation.
type EstimateNutritionRequest struct {
	Description string `json:"description" binding:"required"`
}

// AskCoachRequest represents the request body for a fitness question.
type AskCoachRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Question    string `json:"question" binding:"required"`
}

// EstimateResponse represents a nutrition estimate in API responses.
type EstimateResponse struct {
	Calories      int             `json:"calories"`
	Protein       decimal.Decimal `json:"protein"`
	Carbohydrates decimal.Decimal `json:"carbohydrates"`
	Fat           decimal.Decimal `json:"fat"`
	Explanation   string          `json:"explanation"`
	Confidence    float64         `json:"confidence"`
	Tier          string          `json:"tier"`
}

// EstimateNutritionResponse wraps the estimate with a cache marker.
type EstimateNutritionResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Cached   bool             `json:"cached"`
}

// AskCoachResponse represents the coach's answer.
type AskCoachResponse struct {
	Answer string `json:"answer"`
}

// ToEstimateResponse converts a domain NutritionEstimate to an EstimateResponse DTO.
func ToEstimateResponse(estimate *entity.NutritionEstimate) EstimateResponse {
	return EstimateResponse{
		Calories:      estimate.Calories,
		Protein:       estimate.Protein,
		Carbohydrates: estimate.Carbohydrates,
		Fat:           estimate.Fat,
		Explanation:   estimate.Explanation,
		Confidence:    estimate.Confidence,
		Tier:          string(estimate.Tier),
	}
}

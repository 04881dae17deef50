package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// AIService is a canned NutritionEstimator. Scenarios script its answers
// per description; unknown descriptions get a generic structured estimate.
type AIService struct {
	mu          sync.Mutex
	estimates   map[string]*entity.NutritionEstimate
	coachAnswer string
	failing     bool
}

// NewAIService creates a mock AI service.
func NewAIService() *AIService {
	return &AIService{
		estimates:   make(map[string]*entity.NutritionEstimate),
		coachAnswer: "Mantenha o foco na sua meta diaria.",
	}
}

// ScriptEstimate registers a canned structured estimate for a description.
func (s *AIService) ScriptEstimate(description string, calories int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimates[normalize(description)] = &entity.NutritionEstimate{
		Calories:      calories,
		Protein:       decimal.NewFromInt(30),
		Carbohydrates: decimal.NewFromInt(50),
		Fat:           decimal.NewFromInt(15),
		Explanation:   "Estimativa de teste",
		Confidence:    0.9,
		Tier:          entity.TierStructured,
	}
}

// SetFailing makes every generation call return an unavailability error.
func (s *AIService) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// Reset clears scripted estimates and the failure flag.
func (s *AIService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimates = make(map[string]*entity.NutritionEstimate)
	s.failing = false
}

// EstimateNutrition returns the scripted estimate for the description.
func (s *AIService) EstimateNutrition(_ context.Context, description string) (*entity.NutritionEstimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return nil, domainerror.NewEstimationError(
			domainerror.ErrCodeAIUnavailable,
			"AI service unavailable",
			nil,
		)
	}
	if estimate, ok := s.estimates[normalize(description)]; ok {
		return estimate, nil
	}
	return &entity.NutritionEstimate{
		Calories:      500,
		Protein:       decimal.NewFromInt(25),
		Carbohydrates: decimal.NewFromInt(55),
		Fat:           decimal.NewFromInt(18),
		Explanation:   "Estimativa generica de teste",
		Confidence:    0.8,
		Tier:          entity.TierStructured,
	}, nil
}

// GenerateCoachResponse returns the canned coach answer.
func (s *AIService) GenerateCoachResponse(_ context.Context, _, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return "", domainerror.NewEstimationError(
			domainerror.ErrCodeAIUnavailable,
			"AI service unavailable",
			nil,
		)
	}
	return s.coachAnswer, nil
}

// IsAvailable reports the mock as configured.
func (s *AIService) IsAvailable() bool {
	return true
}

func normalize(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

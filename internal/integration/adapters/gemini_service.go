// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/fitness-partner/backend/internal/domain/entity"
	domainerror "github.com/fitness-partner/backend/internal/domain/error"
)

// Bounds for a calorie figure recovered by the degraded text scan. Numbers
// outside this window are treated as noise (weights, years, phone fragments).
const (
	minPlausibleCalories = 50
	maxPlausibleCalories = 3000
)

// degradedConfidence is the fixed confidence assigned to text-scan estimates.
const degradedConfidence = 0.5

// defaultStructuredConfidence is used when the model omits the confidence field.
const defaultStructuredConfidence = 0.8

// degradedExplanation marks estimates recovered without macro details.
const degradedExplanation = "Estimativa baseada em analise de texto (sem detalhes de macros)"

// GeminiService implements the NutritionEstimator using Google Gemini.
type GeminiService struct {
	apiKey       string
	modelName    string
	temperature  float32
	systemPrompt string
}

// NewGeminiService creates a new Gemini service instance. systemPrompt is the
// coach persona preamble used for conversational answers.
func NewGeminiService(apiKey, modelName string, temperature float32, systemPrompt string) *GeminiService {
	return &GeminiService{
		apiKey:       apiKey,
		modelName:    modelName,
		temperature:  temperature,
		systemPrompt: systemPrompt,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// EstimateNutrition analyzes a free-text meal description and returns a
// structured estimate. A malformed model answer falls back to a plain text
// scan for a lone calorie figure before giving up.
func (s *GeminiService) EstimateNutrition(ctx context.Context, description string) (*entity.NutritionEstimate, error) {
	text, err := s.generate(ctx, s.buildEstimatePrompt(description))
	if err != nil {
		return nil, err
	}

	if estimate, err := parseStructuredEstimate(text); err == nil {
		return estimate, nil
	}

	if estimate, ok := extractCaloriesFromText(text); ok {
		return estimate, nil
	}

	return nil, domainerror.NewEstimationError(
		domainerror.ErrCodeEstimationFailed,
		"could not extract calorie information from AI response",
		domainerror.ErrEstimationFailed,
	)
}

// GenerateCoachResponse answers a free-form fitness question.
func (s *GeminiService) GenerateCoachResponse(ctx context.Context, userMessage, priorContext string) (string, error) {
	var sb strings.Builder
	sb.WriteString(s.systemPrompt)
	sb.WriteString("\n\n")
	if priorContext != "" {
		sb.WriteString("CONVERSA ANTERIOR:\n")
		sb.WriteString(priorContext)
		sb.WriteString("\n\n")
	}
	sb.WriteString("PERGUNTA DO USUARIO:\n")
	sb.WriteString(userMessage)

	return s.generate(ctx, sb.String())
}

// generate runs a single prompt through the model and returns the text content.
func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.NewEstimationError(
			domainerror.ErrCodeAIUnavailable,
			"gemini service is not configured",
			domainerror.ErrAIUnavailable,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", domainerror.NewEstimationError(
			domainerror.ErrCodeAIUnavailable,
			"failed to create gemini client",
			err,
		)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(s.temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", domainerror.NewEstimationError(
			domainerror.ErrCodeAIUnavailable,
			"failed to generate content",
			err,
		)
	}

	text := extractText(resp)
	if text == "" {
		return "", domainerror.NewEstimationError(
			domainerror.ErrCodeEmptyAIResponse,
			"no text content in response",
			domainerror.ErrEmptyAIResponse,
		)
	}
	return text, nil
}

// buildEstimatePrompt creates the nutrition analysis prompt.
func (s *GeminiService) buildEstimatePrompt(description string) string {
	var sb strings.Builder

	sb.WriteString(`Voce e um nutricionista especializado em estimar informacoes nutricionais de refeicoes descritas em texto livre.

Analise a descricao da refeicao abaixo e estime calorias e macronutrientes.

REGRAS:
- Calorias devem ser um numero inteiro realista para a refeicao descrita
- Macros em gramas, com ate uma casa decimal
- confidence entre 0.0 e 1.0 refletindo a precisao da descricao
- explanation curta em Portugues Brasileiro

Considere:
- Tamanhos e quantidades mencionadas na descricao
- Metodo de preparo (grelhado, frito, cozido, etc)
- Porcoes tipicas brasileiras quando a quantidade nao for informada

DESCRICAO DA REFEICAO:
`)
	sb.WriteString(description)
	sb.WriteString(`

Responda com um objeto JSON:
{
  "calories": inteiro,
  "protein": numero em gramas,
  "carbohydrates": numero em gramas,
  "fat": numero em gramas,
  "explanation": "string em Portugues",
  "confidence": 0.0-1.0
}

FORMATO DE RESPOSTA: Retorne apenas o objeto JSON, sem markdown, sem blocos de codigo e sem texto adicional.
`)

	return sb.String()
}

// geminiEstimate represents the raw JSON answer from Gemini.
type geminiEstimate struct {
	Calories      int      `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbohydrates float64  `json:"carbohydrates"`
	Fat           float64  `json:"fat"`
	Explanation   string   `json:"explanation"`
	Confidence    *float64 `json:"confidence"`
}

// parseStructuredEstimate parses the primary JSON answer into an estimate.
func parseStructuredEstimate(text string) (*entity.NutritionEstimate, error) {
	cleaned := stripCodeFences(text)

	var raw geminiEstimate
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if raw.Calories <= 0 {
		return nil, fmt.Errorf("structured response missing calories")
	}

	confidence := defaultStructuredConfidence
	if raw.Confidence != nil {
		confidence = *raw.Confidence
	}

	return &entity.NutritionEstimate{
		Calories:      raw.Calories,
		Protein:       decimal.NewFromFloat(raw.Protein),
		Carbohydrates: decimal.NewFromFloat(raw.Carbohydrates),
		Fat:           decimal.NewFromFloat(raw.Fat),
		Explanation:   raw.Explanation,
		Confidence:    confidence,
		Tier:          entity.TierStructured,
	}, nil
}

// extractCaloriesFromText scans free text for the first plausible calorie
// figure. Used when the model ignored the JSON instruction.
func extractCaloriesFromText(text string) (*entity.NutritionEstimate, bool) {
	for _, field := range strings.Fields(text) {
		digits := stripNonDigits(field)
		if digits == "" {
			continue
		}
		value, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		if value < minPlausibleCalories || value > maxPlausibleCalories {
			continue
		}
		return &entity.NutritionEstimate{
			Calories:      value,
			Protein:       decimal.Zero,
			Carbohydrates: decimal.Zero,
			Fat:           decimal.Zero,
			Explanation:   degradedExplanation,
			Confidence:    degradedConfidence,
			Tier:          entity.TierDegraded,
		}, true
	}
	return nil, false
}

// stripCodeFences removes markdown code blocks around a JSON payload.
func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func stripNonDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// extractText pulls the first text part out of a generation response.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}

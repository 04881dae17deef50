package adapters

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fitness-partner/backend/internal/domain/entity"
)

func TestParseStructuredEstimate(t *testing.T) {
	t.Run("parses a fenced JSON response", func(t *testing.T) {
		text := "```json\n" +
			`{"calories": 650, "protein": 42.5, "carbohydrates": 60, "fat": 20,` +
			` "explanation": "Frango grelhado com arroz", "confidence": 0.9}` +
			"\n```"

		estimate, err := parseStructuredEstimate(text)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if estimate.Calories != 650 {
			t.Errorf("expected 650 calories, got %d", estimate.Calories)
		}
		if !estimate.Protein.Equal(decimal.NewFromFloat(42.5)) {
			t.Errorf("expected protein 42.5, got %s", estimate.Protein)
		}
		if estimate.Confidence != 0.9 {
			t.Errorf("expected confidence 0.9, got %.2f", estimate.Confidence)
		}
		if estimate.Tier != entity.TierStructured {
			t.Errorf("expected structured tier, got %s", estimate.Tier)
		}
	})

	t.Run("parses bare JSON without fences", func(t *testing.T) {
		text := `{"calories": 320, "protein": 12, "carbohydrates": 45, "fat": 8, "explanation": "Lanche", "confidence": 0.75}`

		estimate, err := parseStructuredEstimate(text)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if estimate.Calories != 320 {
			t.Errorf("expected 320 calories, got %d", estimate.Calories)
		}
	})

	t.Run("defaults confidence when the field is absent", func(t *testing.T) {
		text := `{"calories": 500, "protein": 30, "carbohydrates": 50, "fat": 15, "explanation": "Almoco"}`

		estimate, err := parseStructuredEstimate(text)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if estimate.Confidence != defaultStructuredConfidence {
			t.Errorf("expected default confidence %.2f, got %.2f",
				defaultStructuredConfidence, estimate.Confidence)
		}
	})

	t.Run("rejects non-positive calories", func(t *testing.T) {
		for _, text := range []string{
			`{"calories": 0, "explanation": "vazio"}`,
			`{"calories": -200, "explanation": "negativo"}`,
			`{"explanation": "sem calorias"}`,
		} {
			if _, err := parseStructuredEstimate(text); err == nil {
				t.Errorf("expected error for %q", text)
			}
		}
	})

	t.Run("rejects free text", func(t *testing.T) {
		if _, err := parseStructuredEstimate("Aproximadamente 500 calorias."); err == nil {
			t.Error("expected error for non-JSON text")
		}
	})
}

func TestExtractCaloriesFromText(t *testing.T) {
	t.Run("recovers the first plausible calorie figure", func(t *testing.T) {
		estimate, ok := extractCaloriesFromText("A refeicao tem aproximadamente 520 kcal no total.")
		if !ok {
			t.Fatal("expected calories to be recovered")
		}
		if estimate.Calories != 520 {
			t.Errorf("expected 520 calories, got %d", estimate.Calories)
		}
		if estimate.Confidence != degradedConfidence {
			t.Errorf("expected confidence %.2f, got %.2f", degradedConfidence, estimate.Confidence)
		}
		if estimate.Tier != entity.TierDegraded {
			t.Errorf("expected degraded tier, got %s", estimate.Tier)
		}
		if !estimate.Protein.IsZero() || !estimate.Carbohydrates.IsZero() || !estimate.Fat.IsZero() {
			t.Error("expected zero macros on a degraded estimate")
		}
		if estimate.Explanation != degradedExplanation {
			t.Errorf("unexpected explanation %q", estimate.Explanation)
		}
	})

	t.Run("skips numbers outside the plausible range", func(t *testing.T) {
		estimate, ok := extractCaloriesFromText("2 fatias de pizza, cerca de 560 kcal")
		if !ok {
			t.Fatal("expected calories to be recovered")
		}
		if estimate.Calories != 560 {
			t.Errorf("expected 560 calories, got %d", estimate.Calories)
		}
	})

	t.Run("handles punctuation attached to the number", func(t *testing.T) {
		estimate, ok := extractCaloriesFromText("Estimo 450, considerando a porcao.")
		if !ok {
			t.Fatal("expected calories to be recovered")
		}
		if estimate.Calories != 450 {
			t.Errorf("expected 450 calories, got %d", estimate.Calories)
		}
	})

	t.Run("fails when no plausible number exists", func(t *testing.T) {
		for _, text := range []string{
			"Nao consigo estimar essa refeicao.",
			"Talvez 20 kcal, talvez 9000 kcal.",
			"",
		} {
			if _, ok := extractCaloriesFromText(text); ok {
				t.Errorf("expected no recovery for %q", text)
			}
		}
	})
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFences(tc.input); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStripNonDigits(t *testing.T) {
	cases := map[string]string{
		"520kcal": "520",
		"450,":    "450",
		"kcal":    "",
		"1.200":   "1200",
	}
	for input, want := range cases {
		if got := stripNonDigits(input); got != want {
			t.Errorf("stripNonDigits(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBuildEstimatePrompt(t *testing.T) {
	svc := NewGeminiService("key", "gemini-2.5-flash-lite", 0.3, "")
	prompt := svc.buildEstimatePrompt("200g de frango grelhado com arroz")

	for _, want := range []string{
		"200g de frango grelhado com arroz",
		"Tamanhos e quantidades mencionadas",
		"Metodo de preparo (grelhado, frito, cozido, etc)",
		"Porcoes tipicas brasileiras quando a quantidade nao for informada",
		"sem markdown, sem blocos de codigo",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestGeminiServiceAvailability(t *testing.T) {
	if NewGeminiService("", "gemini-2.5-flash-lite", 0.3, "").IsAvailable() {
		t.Error("expected service without API key to be unavailable")
	}
	if !NewGeminiService("key", "gemini-2.5-flash-lite", 0.3, "").IsAvailable() {
		t.Error("expected configured service to be available")
	}
}

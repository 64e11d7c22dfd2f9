package intelligence

import (
	"context"

	"checkingo/models"

	genai "github.com/google/generative-ai-go/genai"
)

// FinderAnswers maps the sub-wizard question keys to the selected values.
type FinderAnswers map[string]string

// AdvisorService produces AI-backed destination suggestions and travel
// tips. Implementations must absorb every upstream failure: callers only
// ever see a usable result, never an error.
type AdvisorService interface {
	SuggestDestinations(ctx context.Context, answers FinderAnswers) []models.DestinationSuggestion
	TravelTips(ctx context.Context, destination string) []string
}

// jsonGenerator is the upstream boundary: one prompt in, schema-constrained
// JSON text out. Satisfied by GeminiClient; tests substitute fakes.
type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema, temperature *float32) (string, error)
}

// DefaultAdvisorService implements AdvisorService on top of a jsonGenerator.
type DefaultAdvisorService struct {
	gen jsonGenerator
}

func NewDefaultAdvisorService(gen jsonGenerator) *DefaultAdvisorService {
	return &DefaultAdvisorService{gen: gen}
}

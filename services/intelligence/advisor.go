package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"checkingo/models"
	"checkingo/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// Question keys the finder collects; prompt fragments are emitted in this
// order so repeated calls phrase the profile identically.
const (
	AnswerClimate       = "climate"
	AnswerVibe          = "vibe"
	AnswerCompanionship = "companionship"
	AnswerBudget        = "budget"
	AnswerLocale        = "locale"
	AnswerSetting       = "setting"
)

var answerOrder = []string{
	AnswerClimate,
	AnswerVibe,
	AnswerCompanionship,
	AnswerBudget,
	AnswerLocale,
	AnswerSetting,
}

var answerLabels = map[string]string{
	AnswerClimate:       "climate",
	AnswerVibe:          "trip vibe",
	AnswerCompanionship: "traveling with",
	AnswerBudget:        "budget per person (flights plus lodging)",
	AnswerLocale:        "domestic or international preference",
	AnswerSetting:       "type of setting",
}

// suggestionTemperature keeps the model moderately creative; repeated
// calls with the same answers may return different destinations.
const suggestionTemperature float32 = 0.7

var suggestionSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":  {Type: genai.TypeString, Description: "City and country of the destination"},
			"desc":  {Type: genai.TypeString, Description: "Short reason why it fits the profile"},
			"match": {Type: genai.TypeNumber, Description: "Compatibility percentage from 0 to 100"},
		},
		Required: []string{"name", "desc", "match"},
	},
}

var tipsSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

// Static results served in place of any failed upstream call.
func suggestionFallback() []models.DestinationSuggestion {
	return []models.DestinationSuggestion{
		{Name: "Paris, France", Desc: "Classic and romantic.", Match: 95},
		{Name: "Cancun, Mexico", Desc: "Beaches and fun.", Match: 92},
	}
}

func tipsFallback() []string {
	return []string{
		"Pack comfortable walking shoes",
		"Try the local food",
		"Arrive early at the busiest sights",
	}
}

// SuggestDestinations asks for 2 destinations matching the finder answers.
// Budget is the dominant constraint. Every failure path falls back to the
// static list; the caller never sees an error state.
func (s *DefaultAdvisorService) SuggestDestinations(ctx context.Context, answers FinderAnswers) []models.DestinationSuggestion {
	logger := utils.GetLogger()

	prompt := buildSuggestionPrompt(answers)
	temperature := suggestionTemperature
	text, err := s.gen.GenerateJSON(ctx, prompt, suggestionSchema, &temperature)
	if err != nil {
		logger.Warn("advisor: destination suggestion failed, serving fallback", zap.Error(err))
		return suggestionFallback()
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("advisor: empty suggestion response, serving fallback")
		return suggestionFallback()
	}

	var raw []struct {
		Name  string  `json:"name"`
		Desc  string  `json:"desc"`
		Match float64 `json:"match"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		logger.Warn("advisor: unparsable suggestion response, serving fallback", zap.Error(err))
		return suggestionFallback()
	}
	if len(raw) == 0 {
		logger.Warn("advisor: no suggestions in response, serving fallback")
		return suggestionFallback()
	}

	suggestions := make([]models.DestinationSuggestion, 0, len(raw))
	for _, r := range raw {
		suggestions = append(suggestions, models.DestinationSuggestion{
			Name:  r.Name,
			Desc:  r.Desc,
			Match: int(math.Round(r.Match)),
		})
	}
	return suggestions
}

// TravelTips asks for 3 short tips for the destination. An empty
// destination still sends the request, phrased for a surprise trip.
func (s *DefaultAdvisorService) TravelTips(ctx context.Context, destination string) []string {
	logger := utils.GetLogger()

	text, err := s.gen.GenerateJSON(ctx, buildTipsPrompt(destination), tipsSchema, nil)
	if err != nil {
		logger.Warn("advisor: travel tips failed, serving fallback", zap.Error(err))
		return tipsFallback()
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("advisor: empty tips response, serving fallback")
		return tipsFallback()
	}

	var tips []string
	if err := json.Unmarshal([]byte(text), &tips); err != nil {
		logger.Warn("advisor: unparsable tips response, serving fallback", zap.Error(err))
		return tipsFallback()
	}
	if len(tips) == 0 {
		logger.Warn("advisor: no tips in response, serving fallback")
		return tipsFallback()
	}
	return tips
}

func buildSuggestionPrompt(answers FinderAnswers) string {
	var parts []string
	for _, key := range answerOrder {
		if value := answers[key]; value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", answerLabels[key], value))
		}
	}
	return fmt.Sprintf(
		"Suggest 2 tourist destinations compatible with the following traveler profile: %s. "+
			"The budget is the dominant constraint: only suggest destinations that are realistic for it.",
		strings.Join(parts, ", "),
	)
}

func buildTipsPrompt(destination string) string {
	if destination == "" {
		destination = "a surprise destination"
	}
	return fmt.Sprintf("Give 3 short, practical, must-know tips for a trip to %s.", destination)
}

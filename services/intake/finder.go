package intake

import (
	"fmt"

	"checkingo/models"
	"checkingo/services/intelligence"
)

// FinderOption is one selectable answer for a finder question.
type FinderOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FinderQuestion is one step of the destination finder.
type FinderQuestion struct {
	Key     string         `json:"key"`
	Prompt  string         `json:"prompt"`
	Options []FinderOption `json:"options"`
}

// finderQuestions is the fixed, ordered question list. The keys line up
// with the advisor's answer vocabulary.
var finderQuestions = []FinderQuestion{
	{
		Key:    intelligence.AnswerClimate,
		Prompt: "What climate do you prefer?",
		Options: []FinderOption{
			{Label: "Beach", Value: "beach"},
			{Label: "Cold", Value: "cold"},
			{Label: "Urban", Value: "urban"},
		},
	},
	{
		Key:    intelligence.AnswerVibe,
		Prompt: "What is the main vibe of the trip?",
		Options: []FinderOption{
			{Label: "Relax", Value: "relax"},
			{Label: "Adventure", Value: "adventure"},
			{Label: "Culture", Value: "culture"},
			{Label: "Luxury", Value: "luxury"},
		},
	},
	{
		Key:    intelligence.AnswerCompanionship,
		Prompt: "Who is traveling with you?",
		Options: []FinderOption{
			{Label: "Couple", Value: "couple"},
			{Label: "Family", Value: "family"},
			{Label: "Friends", Value: "friends"},
			{Label: "Solo", Value: "solo"},
		},
	},
	{
		Key:    intelligence.AnswerBudget,
		Prompt: "What is your spending expectation (per person, flights plus lodging)?",
		Options: []FinderOption{
			{Label: "Up to R$1,500", Value: "up to 1500 BRL"},
			{Label: "Up to R$3,000", Value: "up to 3000 BRL"},
			{Label: "Up to R$5,000", Value: "up to 5000 BRL"},
			{Label: "Up to R$7,000", Value: "up to 7000 BRL"},
			{Label: "Above R$7,000", Value: "above 7000 BRL"},
		},
	},
	{
		Key:    intelligence.AnswerLocale,
		Prompt: "Do you prefer destinations...",
		Options: []FinderOption{
			{Label: "Domestic", Value: "domestic"},
			{Label: "International", Value: "international"},
			{Label: "Either", Value: "either"},
		},
	},
	{
		Key:    intelligence.AnswerSetting,
		Prompt: "And the type of tourism?",
		Options: []FinderOption{
			{Label: "Countryside & nature", Value: "countryside"},
			{Label: "Urban & city", Value: "urban"},
			{Label: "Both", Value: "both"},
		},
	},
}

// FinderQuestions returns the fixed question list, for rendering.
func FinderQuestions() []FinderQuestion {
	return finderQuestions
}

// NewFinderState starts the sub-wizard at its first question.
func NewFinderState() *models.FinderState {
	return &models.FinderState{
		Step:    0,
		Answers: map[string]string{},
	}
}

// AdvanceFinder applies one selection. The key must match the current
// question and the value must be one of its options; there is no back
// navigation and no editing of prior answers. Returns true when the last
// question was just answered and the machine entered its analyzing state.
func AdvanceFinder(f *models.FinderState, key, value string) (bool, error) {
	if f.Analyzing {
		return false, NewFlowError("destination finder already completed")
	}
	if f.Step >= len(finderQuestions) {
		return false, NewFlowError("destination finder already completed")
	}

	current := finderQuestions[f.Step]
	if key != current.Key {
		return false, NewValidationError(fmt.Sprintf("expected an answer for %q, got %q", current.Key, key))
	}
	valid := false
	for _, opt := range current.Options {
		if opt.Value == value {
			valid = true
			break
		}
	}
	if !valid {
		return false, NewValidationError(fmt.Sprintf("%q is not an option for %q", value, key))
	}

	f.Answers[key] = value
	if f.Step < len(finderQuestions)-1 {
		f.Step++
		return false, nil
	}
	f.Analyzing = true
	return true, nil
}

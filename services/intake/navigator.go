package intake

import (
	"context"
	"fmt"
	"strings"

	"checkingo/models"
	"checkingo/services/intelligence"
	"checkingo/utils"

	"go.uber.org/zap"
)

func requireScreen(s *models.WizardSession, want models.Screen) error {
	if s.Screen != want {
		return NewFlowError(fmt.Sprintf("operation requires the %s screen, session is on %s", want, s.Screen))
	}
	return nil
}

// StartSession creates a new session on the landing screen.
func (svc *DefaultWizardService) StartSession() models.WizardSession {
	session := svc.Sessions.Create()
	utils.GetLogger().Info("wizard session started", zap.String("sessionId", session.SessionID))
	return session
}

func (svc *DefaultWizardService) GetSession(id string) (models.WizardSession, error) {
	return svc.Sessions.Snapshot(id)
}

// ChooseTraveler moves landing -> form with a fresh, all-empty profile.
func (svc *DefaultWizardService) ChooseTraveler(id string) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenLanding); err != nil {
			return err
		}
		s.Screen = models.ScreenForm
		s.Profile = models.NewTravelerProfile()
		s.Finder = nil
		s.Suggestions = nil
		return nil
	})
}

// OpenAgentPrompt opens the password overlay on the landing screen with a
// cleared input and error flag.
func (svc *DefaultWizardService) OpenAgentPrompt(id string) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenLanding); err != nil {
			return err
		}
		s.PromptOpen = true
		s.PromptInput = ""
		s.PasswordError = false
		return nil
	})
}

// SubmitPassphrase compares against the configured passphrase. A wrong
// passphrase keeps the prompt open with the error flag set and the input
// retained for correction; there is no lockout.
func (svc *DefaultWizardService) SubmitPassphrase(id, passphrase string) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenLanding); err != nil {
			return err
		}
		if !s.PromptOpen {
			return NewFlowError("agent password prompt is not open")
		}
		s.PromptInput = passphrase
		if passphrase != svc.Passphrase {
			s.PasswordError = true
			return nil
		}
		s.PromptOpen = false
		s.PromptInput = ""
		s.PasswordError = false
		s.Screen = models.ScreenDashboard
		return nil
	})
}

// CancelPrompt closes the overlay and discards the typed passphrase.
func (svc *DefaultWizardService) CancelPrompt(id string) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenLanding); err != nil {
			return err
		}
		s.PromptOpen = false
		s.PromptInput = ""
		s.PasswordError = false
		return nil
	})
}

// AgentBack leaves the dashboard for the landing screen.
func (svc *DefaultWizardService) AgentBack(id string) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenDashboard); err != nil {
			return err
		}
		s.Screen = models.ScreenLanding
		return nil
	})
}

// ApplyFieldInput writes one form input event into the profile. Choosing
// the AI destination source with no destination chosen yet activates the
// finder; choosing a user-defined source deactivates it but keeps any
// previously accepted destination name.
func (svc *DefaultWizardService) ApplyFieldInput(id, name, value string, checked bool) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenForm); err != nil {
			return err
		}
		if err := ApplyField(&s.Profile, name, value, checked); err != nil {
			return err
		}

		switch {
		case s.Profile.DestinationSource == models.DestinationAISuggested && s.Profile.DestinationName == "":
			if s.Finder == nil {
				s.Finder = NewFinderState()
				s.Suggestions = nil
			}
		case s.Profile.DestinationSource != models.DestinationAISuggested:
			s.Finder = nil
			s.Suggestions = nil
		}
		return nil
	})
}

// SelectFinderOption advances the destination finder by one answer. On
// the final answer the accumulated map goes to the advisor; the resulting
// suggestions are stored unless the session moved on in the meantime, in
// which case they are discarded.
func (svc *DefaultWizardService) SelectFinderOption(ctx context.Context, id, key, value string) (models.WizardSession, error) {
	var answers intelligence.FinderAnswers

	session, err := svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenForm); err != nil {
			return err
		}
		if s.Finder == nil {
			return NewFlowError("destination finder is not active")
		}
		done, err := AdvanceFinder(s.Finder, key, value)
		if err != nil {
			return err
		}
		if done {
			answers = make(intelligence.FinderAnswers, len(s.Finder.Answers))
			for k, v := range s.Finder.Answers {
				answers[k] = v
			}
		}
		return nil
	})
	if err != nil || answers == nil {
		return session, err
	}

	suggestions := svc.Advisor.SuggestDestinations(ctx, answers)

	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if s.Screen != models.ScreenForm || s.Finder == nil || !s.Finder.Analyzing {
			// Screen was abandoned while analyzing; drop the result.
			return nil
		}
		s.Finder = nil
		s.Suggestions = suggestions
		return nil
	})
}

// AcceptSuggestion copies the chosen suggestion's name into the profile
// and clears the pending list: acceptance is single-shot.
func (svc *DefaultWizardService) AcceptSuggestion(id, name string) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenForm); err != nil {
			return err
		}
		if len(s.Suggestions) == 0 {
			return NewFlowError("no pending destination suggestions")
		}
		for _, sg := range s.Suggestions {
			if sg.Name == name {
				s.Profile.DestinationName = sg.Name
				s.Suggestions = nil
				return nil
			}
		}
		return NewValidationError(fmt.Sprintf("%q is not one of the suggested destinations", name))
	})
}

// Submit finalizes the profile, appends it to the history and moves the
// session to the success screen. A validation failure leaves everything
// untouched.
func (svc *DefaultWizardService) Submit(id string) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenForm); err != nil {
			return err
		}
		if err := FinalizeProfile(&s.Profile); err != nil {
			return err
		}

		submitted := s.Profile
		svc.History.Append(submitted)
		s.CurrentSubmission = &submitted
		s.Screen = models.ScreenSuccess
		s.Finder = nil
		s.Suggestions = nil

		utils.GetLogger().Info("lead submitted",
			zap.String("leadId", submitted.ID),
			zap.String("destination", submitted.DestinationName))
		return nil
	})
}

// Reset returns to the landing screen, clearing the current submission.
// The submission history is never cleared.
func (svc *DefaultWizardService) Reset(id string) (models.WizardSession, error) {
	return svc.Sessions.Update(id, func(s *models.WizardSession) error {
		if err := requireScreen(s, models.ScreenSuccess); err != nil {
			return err
		}
		s.Screen = models.ScreenLanding
		s.CurrentSubmission = nil
		s.Profile = models.NewTravelerProfile()
		return nil
	})
}

// Leads returns the dashboard list, newest first.
func (svc *DefaultWizardService) Leads(id string) ([]models.LeadSummary, error) {
	session, err := svc.Sessions.Snapshot(id)
	if err != nil {
		return nil, err
	}
	if err := requireScreen(&session, models.ScreenDashboard); err != nil {
		return nil, err
	}

	leads := svc.History.List()
	summaries := make([]models.LeadSummary, 0, len(leads))
	for _, lead := range leads {
		destination := lead.DestinationName
		if destination == "" {
			destination = "Destination to be defined"
		}
		summaries = append(summaries, models.LeadSummary{
			ID:                  lead.ID,
			Name:                lead.Name,
			Initial:             strings.ToUpper(string([]rune(lead.Name)[0])),
			DestinationName:     destination,
			TravelerDescription: lead.TravelerDescription,
			ExperienceLevel:     lead.ExperienceLevel,
			SubmittedAt:         lead.SubmittedAt,
		})
	}
	return summaries, nil
}

// LeadDetail returns one submission with its derived contact link. The
// lead's number gets the Brazilian country prefix, as agents dial it.
func (svc *DefaultWizardService) LeadDetail(id, leadID string) (models.LeadDetail, error) {
	session, err := svc.Sessions.Snapshot(id)
	if err != nil {
		return models.LeadDetail{}, err
	}
	if err := requireScreen(&session, models.ScreenDashboard); err != nil {
		return models.LeadDetail{}, err
	}

	lead, ok := svc.History.Get(leadID)
	if !ok {
		return models.LeadDetail{}, NewValidationError(fmt.Sprintf("no lead with id %q", leadID))
	}
	return models.LeadDetail{
		TravelerProfile: lead,
		WhatsAppLink:    utils.WhatsAppLink("55"+lead.WhatsAppNumber, ""),
		AdvanceDays:     lead.AdvanceDays(),
	}, nil
}

// Tips fetches the post-submission travel tips for the current
// submission's destination. The advisor absorbs upstream failures, so
// this only errors on a missing session or wrong screen.
func (svc *DefaultWizardService) Tips(ctx context.Context, id string) ([]string, error) {
	session, err := svc.Sessions.Snapshot(id)
	if err != nil {
		return nil, err
	}
	if err := requireScreen(&session, models.ScreenSuccess); err != nil {
		return nil, err
	}

	destination := ""
	if session.CurrentSubmission != nil {
		destination = session.CurrentSubmission.DestinationName
	}
	return svc.Advisor.TravelTips(ctx, destination), nil
}

// Plans returns the upsell tiers with deep links personalized to the
// current submission.
func (svc *DefaultWizardService) Plans(id string) ([]models.Plan, error) {
	session, err := svc.Sessions.Snapshot(id)
	if err != nil {
		return nil, err
	}
	if err := requireScreen(&session, models.ScreenSuccess); err != nil {
		return nil, err
	}

	travelerName := ""
	if session.CurrentSubmission != nil {
		travelerName = session.CurrentSubmission.Name
	}
	return PlansFor(travelerName, svc.AgencyWhatsApp), nil
}

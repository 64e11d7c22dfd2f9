package intake

import (
	"context"

	"checkingo/models"
	"checkingo/services/intelligence"
)

// WizardService drives one wizard session through the intake flow: the
// top-level screen machine, the form state, the destination finder and
// the agent dashboard views. Every method returns a snapshot of the
// session after the operation so handlers can render it directly.
type WizardService interface {
	StartSession() models.WizardSession
	GetSession(id string) (models.WizardSession, error)

	ChooseTraveler(id string) (models.WizardSession, error)
	OpenAgentPrompt(id string) (models.WizardSession, error)
	SubmitPassphrase(id, passphrase string) (models.WizardSession, error)
	CancelPrompt(id string) (models.WizardSession, error)
	AgentBack(id string) (models.WizardSession, error)

	ApplyFieldInput(id, name, value string, checked bool) (models.WizardSession, error)
	SelectFinderOption(ctx context.Context, id, key, value string) (models.WizardSession, error)
	AcceptSuggestion(id, name string) (models.WizardSession, error)
	Submit(id string) (models.WizardSession, error)
	Reset(id string) (models.WizardSession, error)

	Leads(id string) ([]models.LeadSummary, error)
	LeadDetail(id, leadID string) (models.LeadDetail, error)
	Tips(ctx context.Context, id string) ([]string, error)
	Plans(id string) ([]models.Plan, error)
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Sessions       *SessionStore
	History        LeadStore
	Advisor        intelligence.AdvisorService
	Passphrase     string
	AgencyWhatsApp string
}

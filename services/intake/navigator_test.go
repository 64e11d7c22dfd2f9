package intake

import (
	"context"
	"testing"
	"time"

	"checkingo/models"
	"checkingo/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassphrase = "1008"

// stubAdvisor records calls and returns canned results; the wizard never
// sees advisor errors by contract.
type stubAdvisor struct {
	suggestions     []models.DestinationSuggestion
	tips            []string
	lastAnswers     intelligence.FinderAnswers
	lastDestination string
	tipsCalls       int
}

func (a *stubAdvisor) SuggestDestinations(_ context.Context, answers intelligence.FinderAnswers) []models.DestinationSuggestion {
	a.lastAnswers = answers
	return a.suggestions
}

func (a *stubAdvisor) TravelTips(_ context.Context, destination string) []string {
	a.tipsCalls++
	a.lastDestination = destination
	return a.tips
}

func newTestWizard() (*DefaultWizardService, *stubAdvisor) {
	advisor := &stubAdvisor{
		suggestions: []models.DestinationSuggestion{
			{Name: "Lisbon, Portugal", Desc: "Mild and walkable.", Match: 90},
			{Name: "Florianopolis, Brazil", Desc: "Beaches on a budget.", Match: 85},
		},
		tips: []string{"tip one", "tip two", "tip three"},
	}
	return &DefaultWizardService{
		Sessions:       NewSessionStore(time.Minute),
		History:        NewMemoryLeadStore(),
		Advisor:        advisor,
		Passphrase:     testPassphrase,
		AgencyWhatsApp: "5521994527694",
	}, advisor
}

func startForm(t *testing.T, svc *DefaultWizardService) string {
	t.Helper()
	session := svc.StartSession()
	_, err := svc.ChooseTraveler(session.SessionID)
	require.NoError(t, err)
	return session.SessionID
}

func TestChooseTraveler_FreshProfile(t *testing.T) {
	svc, _ := newTestWizard()
	session := svc.StartSession()

	updated, err := svc.ChooseTraveler(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.ScreenForm, updated.Screen)
	assert.Empty(t, updated.Profile.Name)
	assert.NotNil(t, updated.Profile.LuggagePreferences)
}

func TestChooseTraveler_OnlyFromLanding(t *testing.T) {
	svc, _ := newTestWizard()
	id := startForm(t, svc)

	_, err := svc.ChooseTraveler(id)
	require.Error(t, err)
	assert.IsType(t, &FlowError{}, err)
}

func TestAgentGate(t *testing.T) {
	svc, _ := newTestWizard()
	session := svc.StartSession()
	id := session.SessionID

	opened, err := svc.OpenAgentPrompt(id)
	require.NoError(t, err)
	assert.True(t, opened.PromptOpen)
	assert.False(t, opened.PasswordError)

	// Wrong passphrase: error flag set, prompt stays open, input retained.
	rejected, err := svc.SubmitPassphrase(id, "wrong")
	require.NoError(t, err)
	assert.True(t, rejected.PromptOpen)
	assert.True(t, rejected.PasswordError)
	assert.Equal(t, models.ScreenLanding, rejected.Screen)

	// No lockout: the exact passphrase still works afterwards.
	granted, err := svc.SubmitPassphrase(id, testPassphrase)
	require.NoError(t, err)
	assert.Equal(t, models.ScreenDashboard, granted.Screen)
	assert.False(t, granted.PromptOpen)
	assert.False(t, granted.PasswordError)

	back, err := svc.AgentBack(id)
	require.NoError(t, err)
	assert.Equal(t, models.ScreenLanding, back.Screen)
}

func TestAgentGate_CancelDiscardsInput(t *testing.T) {
	svc, _ := newTestWizard()
	session := svc.StartSession()
	id := session.SessionID

	_, err := svc.OpenAgentPrompt(id)
	require.NoError(t, err)
	_, err = svc.SubmitPassphrase(id, "wrong")
	require.NoError(t, err)

	cancelled, err := svc.CancelPrompt(id)
	require.NoError(t, err)
	assert.False(t, cancelled.PromptOpen)
	assert.False(t, cancelled.PasswordError)
	assert.Equal(t, models.ScreenLanding, cancelled.Screen)
	assert.Empty(t, cancelled.PromptInput)
}

func TestSubmit_ValidationFailureLeavesHistoryUntouched(t *testing.T) {
	svc, _ := newTestWizard()
	id := startForm(t, svc)

	_, err := svc.Submit(id)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Equal(t, 0, svc.History.Len())

	session, err := svc.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, models.ScreenForm, session.Screen)
	assert.Empty(t, session.Profile.ID)
	assert.Empty(t, session.Profile.SubmittedAt)
}

func TestSubmit_EndToEnd(t *testing.T) {
	// Name and WhatsApp present, destination left unset: submission
	// still succeeds, only the contact fields block.
	svc, _ := newTestWizard()
	id := startForm(t, svc)

	_, err := svc.ApplyFieldInput(id, "name", "Ana", false)
	require.NoError(t, err)
	_, err = svc.ApplyFieldInput(id, "whatsappNumber", "21999999999", false)
	require.NoError(t, err)
	_, err = svc.ApplyFieldInput(id, "acknowledgedRules", "", true)
	require.NoError(t, err)

	session, err := svc.Submit(id)
	require.NoError(t, err)
	assert.Equal(t, models.ScreenSuccess, session.Screen)
	require.NotNil(t, session.CurrentSubmission)
	assert.NotEmpty(t, session.CurrentSubmission.ID)
	assert.NotEmpty(t, session.CurrentSubmission.SubmittedAt)

	leads := svc.History.List()
	require.Len(t, leads, 1)
	assert.Equal(t, session.CurrentSubmission.ID, leads[0].ID)
}

func TestReset_KeepsHistory(t *testing.T) {
	svc, _ := newTestWizard()
	id := startForm(t, svc)

	_, err := svc.ApplyFieldInput(id, "name", "Ana", false)
	require.NoError(t, err)
	_, err = svc.ApplyFieldInput(id, "whatsappNumber", "21999999999", false)
	require.NoError(t, err)
	_, err = svc.Submit(id)
	require.NoError(t, err)

	before := svc.History.Len()
	session, err := svc.Reset(id)
	require.NoError(t, err)
	assert.Equal(t, models.ScreenLanding, session.Screen)
	assert.Nil(t, session.CurrentSubmission)
	assert.Equal(t, before, svc.History.Len())
}

func TestFinderFlow_SuggestionAcceptance(t *testing.T) {
	svc, advisor := newTestWizard()
	id := startForm(t, svc)
	ctx := context.Background()

	_, err := svc.ApplyFieldInput(id, "destinationSource", models.DestinationAISuggested, false)
	require.NoError(t, err)

	session, err := svc.GetSession(id)
	require.NoError(t, err)
	require.NotNil(t, session.Finder)

	for _, q := range FinderQuestions() {
		session, err = svc.SelectFinderOption(ctx, id, q.Key, q.Options[0].Value)
		require.NoError(t, err)
	}

	// All six answers reached the advisor.
	require.Len(t, advisor.lastAnswers, 6)
	assert.Nil(t, session.Finder)
	require.Len(t, session.Suggestions, 2)

	accepted, err := svc.AcceptSuggestion(id, "Lisbon, Portugal")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon, Portugal", accepted.Profile.DestinationName)
	assert.Empty(t, accepted.Suggestions)

	// Acceptance is single-shot.
	_, err = svc.AcceptSuggestion(id, "Florianopolis, Brazil")
	require.Error(t, err)
	assert.IsType(t, &FlowError{}, err)
}

func TestFinderFlow_SwitchingSourceKeepsChosenName(t *testing.T) {
	svc, _ := newTestWizard()
	id := startForm(t, svc)
	ctx := context.Background()

	_, err := svc.ApplyFieldInput(id, "destinationSource", models.DestinationAISuggested, false)
	require.NoError(t, err)
	for _, q := range FinderQuestions() {
		_, err = svc.SelectFinderOption(ctx, id, q.Key, q.Options[0].Value)
		require.NoError(t, err)
	}
	_, err = svc.AcceptSuggestion(id, "Lisbon, Portugal")
	require.NoError(t, err)

	session, err := svc.ApplyFieldInput(id, "destinationSource", models.DestinationUserDefined, false)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon, Portugal", session.Profile.DestinationName)
	assert.Nil(t, session.Finder)
}

func TestFinderFlow_AcceptedSuggestionRejectsUnknownName(t *testing.T) {
	svc, _ := newTestWizard()
	id := startForm(t, svc)
	ctx := context.Background()

	_, err := svc.ApplyFieldInput(id, "destinationSource", models.DestinationAISuggested, false)
	require.NoError(t, err)
	for _, q := range FinderQuestions() {
		_, err = svc.SelectFinderOption(ctx, id, q.Key, q.Options[0].Value)
		require.NoError(t, err)
	}

	_, err = svc.AcceptSuggestion(id, "Atlantis")
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestLeads_DashboardViews(t *testing.T) {
	svc, _ := newTestWizard()

	// Submit two leads through a traveler session. Lead ids have
	// millisecond resolution, so the submissions must not share one.
	travelerID := startForm(t, svc)
	for _, name := range []string{"Ana", "Bruno"} {
		_, err := svc.ApplyFieldInput(travelerID, "name", name, false)
		require.NoError(t, err)
		_, err = svc.ApplyFieldInput(travelerID, "whatsappNumber", "21 99999-9999", false)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
		_, err = svc.Submit(travelerID)
		require.NoError(t, err)
		_, err = svc.Reset(travelerID)
		require.NoError(t, err)
		_, err = svc.ChooseTraveler(travelerID)
		require.NoError(t, err)
	}

	// Dashboard requires the agent screen.
	agentSession := svc.StartSession()
	agentID := agentSession.SessionID
	_, err := svc.Leads(agentID)
	require.Error(t, err)
	assert.IsType(t, &FlowError{}, err)

	_, err = svc.OpenAgentPrompt(agentID)
	require.NoError(t, err)
	_, err = svc.SubmitPassphrase(agentID, testPassphrase)
	require.NoError(t, err)

	leads, err := svc.Leads(agentID)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.NotEqual(t, leads[0].ID, leads[1].ID)
	assert.Equal(t, "Bruno", leads[0].Name)
	assert.Equal(t, "B", leads[0].Initial)
	assert.Equal(t, "Ana", leads[1].Name)
	assert.Equal(t, "Destination to be defined", leads[0].DestinationName)

	detail, err := svc.LeadDetail(agentID, leads[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", detail.Name)
	assert.Equal(t, "https://wa.me/5521999999999", detail.WhatsAppLink)

	_, err = svc.LeadDetail(agentID, "unknown")
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestTipsAndPlans_SuccessScreenOnly(t *testing.T) {
	svc, advisor := newTestWizard()
	id := startForm(t, svc)
	ctx := context.Background()

	_, err := svc.Tips(ctx, id)
	require.Error(t, err)
	assert.IsType(t, &FlowError{}, err)

	_, err = svc.ApplyFieldInput(id, "name", "Ana Clara", false)
	require.NoError(t, err)
	_, err = svc.ApplyFieldInput(id, "whatsappNumber", "21999999999", false)
	require.NoError(t, err)
	_, err = svc.Submit(id)
	require.NoError(t, err)

	tips, err := svc.Tips(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, advisor.tips, tips)
	// Destination was never chosen; the advisor still gets asked.
	assert.Equal(t, 1, advisor.tipsCalls)
	assert.Empty(t, advisor.lastDestination)

	plans, err := svc.Plans(id)
	require.NoError(t, err)
	require.Len(t, plans, 4)
	for _, plan := range plans {
		assert.Contains(t, plan.WhatsAppLink, "https://wa.me/5521994527694?text=")
		assert.Contains(t, plan.WhatsAppLink, "Ana")
	}
}

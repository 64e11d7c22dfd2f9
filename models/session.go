package models

// Screen identifies which top-level view a wizard session is showing.
type Screen string

const (
	ScreenLanding   Screen = "landing"
	ScreenForm      Screen = "form"
	ScreenDashboard Screen = "agent-dashboard"
	ScreenSuccess   Screen = "success"
)

// FinderState is the Destination-Finder sub-wizard: a strictly linear
// walk over a fixed question list. Step is the 0-based index of the
// question currently shown; Analyzing is the terminal state entered after
// the last answer while suggestions are produced.
type FinderState struct {
	Step      int               `json:"step"`
	Answers   map[string]string `json:"answers"`
	Analyzing bool              `json:"analyzing"`
}

// WizardSession holds all per-terminal state between matching a screen and
// the next user input event: navigator screen, the in-progress profile,
// the sub-wizard, pending AI suggestions and the post-submit snapshot.
type WizardSession struct {
	SessionID string `json:"sessionId"`
	Screen    Screen `json:"screen"`

	// Password prompt overlay on the landing screen.
	PromptOpen    bool   `json:"promptOpen"`
	PromptInput   string `json:"-"`
	PasswordError bool   `json:"passwordError"`

	Profile     TravelerProfile         `json:"profile"`
	Finder      *FinderState            `json:"finder,omitempty"`
	Suggestions []DestinationSuggestion `json:"suggestions,omitempty"`

	// CurrentSubmission is set on submit and cleared on reset; the
	// submission history itself outlives the session.
	CurrentSubmission *TravelerProfile `json:"currentSubmission,omitempty"`
}

// LeadSummary is the dashboard list card for one submission.
type LeadSummary struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Initial             string `json:"initial"`
	DestinationName     string `json:"destinationName"`
	TravelerDescription string `json:"travelerDescription"`
	ExperienceLevel     string `json:"experienceLevel"`
	SubmittedAt         string `json:"submittedAt"`
}

// LeadDetail is the dashboard detail view: the full profile plus the
// derived contact link and advance-purchase hint.
type LeadDetail struct {
	TravelerProfile
	WhatsAppLink string `json:"whatsappLink"`
	AdvanceDays  int    `json:"advanceDays"`
}

package models

// Enumerated values for TravelerProfile fields. The empty string means
// "unset" for every enum; the factory below returns a fully populated
// record so handlers never deal with partially built profiles.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExperienced  = "experienced"

	DestinationUserDefined = "user-defined"
	DestinationAISuggested = "ai-suggested"

	ScopeDomestic      = "domestic"
	ScopeInternational = "international"

	LeadTimeShort = "short"
	LeadTimeLong  = "long"

	FlexibilityFull    = "full"
	FlexibilityPartial = "partial"
	FlexibilityNone    = "none"

	FlightDirect     = "direct"
	FlightConnecting = "connecting"
	FlightStopover   = "stopover"

	PurchaseSeparate = "separate"
	PurchasePackage  = "package"

	PaceSlow     = "slow"
	PaceBalanced = "balanced"
	PaceIntense  = "intense"
)

// TravelerProfile is the full intake record for one traveler. It is built
// up field by field while the wizard session sits on the form screen and
// becomes a lead once finalized.
type TravelerProfile struct {
	// Assigned at submission time, never before and never twice.
	ID          string `json:"id,omitempty"`
	SubmittedAt string `json:"submittedAt,omitempty"`

	Name           string `json:"name"`
	WhatsAppNumber string `json:"whatsappNumber"`

	TravelerDescription string `json:"travelerDescription"`
	ExperienceLevel     string `json:"experienceLevel"`

	DestinationSource string `json:"destinationSource"`
	DestinationName   string `json:"destinationName"`
	DestinationScope  string `json:"destinationScope"`
	BookingLeadTime   string `json:"bookingLeadTime"`

	DepartureDate   string `json:"departureDate"`
	ReturnDate      string `json:"returnDate"`
	DateFlexibility string `json:"dateFlexibility"`

	DepartureAirport   string   `json:"departureAirport"`
	PreferredAirline   string   `json:"preferredAirline"`
	LuggagePreferences []string `json:"luggagePreferences"`
	FlightPreference   string   `json:"flightPreference"`
	LocalTransport     []string `json:"localTransport"`

	LodgingStyles      []string `json:"lodgingStyles"`
	MealPlan           string   `json:"mealPlan"`
	PaymentMethods     []string `json:"paymentMethods"`
	BookingPlatforms   []string `json:"bookingPlatforms"`
	InvestmentPriority string   `json:"investmentPriority"`
	PurchaseStrategy   string   `json:"purchaseStrategy"`
	TravelPace         string   `json:"travelPace"`
	MustHaveItems      []string `json:"mustHaveItems"`

	AcknowledgedRules bool   `json:"acknowledgedRules"`
	FinalNotes        string `json:"finalNotes"`
	Restrictions      string `json:"restrictions"`
}

// NewTravelerProfile returns an all-empty profile with every set-valued
// field allocated, so toggles and JSON rendering never see a nil slice.
func NewTravelerProfile() TravelerProfile {
	return TravelerProfile{
		LuggagePreferences: []string{},
		LocalTransport:     []string{},
		LodgingStyles:      []string{},
		PaymentMethods:     []string{},
		BookingPlatforms:   []string{},
		MustHaveItems:      []string{},
	}
}

// AdvanceDays returns the advance-purchase guidance in days for the
// profile's destination scope: 45 for domestic, 90 for international,
// 0 when the scope is still unset.
func (p TravelerProfile) AdvanceDays() int {
	switch p.DestinationScope {
	case ScopeDomestic:
		return 45
	case ScopeInternational:
		return 90
	default:
		return 0
	}
}

// DestinationSuggestion is one AI-proposed destination. Immutable once
// returned by the advisor.
type DestinationSuggestion struct {
	Name  string `json:"name"`
	Desc  string `json:"desc"`
	Match int    `json:"match"`
}

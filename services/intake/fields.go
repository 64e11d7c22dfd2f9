package intake

import (
	"fmt"

	"checkingo/models"
)

type fieldKind int

const (
	fieldScalar fieldKind = iota
	fieldSet
	fieldBool
)

// fieldDescriptor ties a form field name to its kind and a typed slot
// accessor. Exactly one accessor is set per descriptor.
type fieldDescriptor struct {
	kind   fieldKind
	scalar func(p *models.TravelerProfile) *string
	set    func(p *models.TravelerProfile) *[]string
	flag   func(p *models.TravelerProfile) *bool
}

func scalarField(slot func(p *models.TravelerProfile) *string) fieldDescriptor {
	return fieldDescriptor{kind: fieldScalar, scalar: slot}
}

func setField(slot func(p *models.TravelerProfile) *[]string) fieldDescriptor {
	return fieldDescriptor{kind: fieldSet, set: slot}
}

func boolField(slot func(p *models.TravelerProfile) *bool) fieldDescriptor {
	return fieldDescriptor{kind: fieldBool, flag: slot}
}

// formFields is the table every field write goes through. Identity fields
// (id, submittedAt) are deliberately absent: they are stamped at
// finalization only.
var formFields = map[string]fieldDescriptor{
	"name":                scalarField(func(p *models.TravelerProfile) *string { return &p.Name }),
	"whatsappNumber":      scalarField(func(p *models.TravelerProfile) *string { return &p.WhatsAppNumber }),
	"travelerDescription": scalarField(func(p *models.TravelerProfile) *string { return &p.TravelerDescription }),
	"experienceLevel":     scalarField(func(p *models.TravelerProfile) *string { return &p.ExperienceLevel }),
	"destinationSource":   scalarField(func(p *models.TravelerProfile) *string { return &p.DestinationSource }),
	"destinationName":     scalarField(func(p *models.TravelerProfile) *string { return &p.DestinationName }),
	"destinationScope":    scalarField(func(p *models.TravelerProfile) *string { return &p.DestinationScope }),
	"bookingLeadTime":     scalarField(func(p *models.TravelerProfile) *string { return &p.BookingLeadTime }),
	"departureDate":       scalarField(func(p *models.TravelerProfile) *string { return &p.DepartureDate }),
	"returnDate":          scalarField(func(p *models.TravelerProfile) *string { return &p.ReturnDate }),
	"dateFlexibility":     scalarField(func(p *models.TravelerProfile) *string { return &p.DateFlexibility }),
	"departureAirport":    scalarField(func(p *models.TravelerProfile) *string { return &p.DepartureAirport }),
	"preferredAirline":    scalarField(func(p *models.TravelerProfile) *string { return &p.PreferredAirline }),
	"flightPreference":    scalarField(func(p *models.TravelerProfile) *string { return &p.FlightPreference }),
	"mealPlan":            scalarField(func(p *models.TravelerProfile) *string { return &p.MealPlan }),
	"investmentPriority":  scalarField(func(p *models.TravelerProfile) *string { return &p.InvestmentPriority }),
	"purchaseStrategy":    scalarField(func(p *models.TravelerProfile) *string { return &p.PurchaseStrategy }),
	"travelPace":          scalarField(func(p *models.TravelerProfile) *string { return &p.TravelPace }),
	"finalNotes":          scalarField(func(p *models.TravelerProfile) *string { return &p.FinalNotes }),
	"restrictions":        scalarField(func(p *models.TravelerProfile) *string { return &p.Restrictions }),

	"luggagePreferences": setField(func(p *models.TravelerProfile) *[]string { return &p.LuggagePreferences }),
	"localTransport":     setField(func(p *models.TravelerProfile) *[]string { return &p.LocalTransport }),
	"lodgingStyles":      setField(func(p *models.TravelerProfile) *[]string { return &p.LodgingStyles }),
	"paymentMethods":     setField(func(p *models.TravelerProfile) *[]string { return &p.PaymentMethods }),
	"bookingPlatforms":   setField(func(p *models.TravelerProfile) *[]string { return &p.BookingPlatforms }),
	"mustHaveItems":      setField(func(p *models.TravelerProfile) *[]string { return &p.MustHaveItems }),

	"acknowledgedRules": boolField(func(p *models.TravelerProfile) *bool { return &p.AcknowledgedRules }),
}

// ApplyField writes one user input event into the profile. Scalars are
// replaced, boolean flags take the checked state, and set-valued fields
// get toggle semantics: checked adds the value if absent, unchecked
// removes it. Re-adding a present value is a no-op.
func ApplyField(p *models.TravelerProfile, name, value string, checked bool) error {
	desc, ok := formFields[name]
	if !ok {
		return NewValidationError(fmt.Sprintf("unknown form field %q", name))
	}

	switch desc.kind {
	case fieldScalar:
		*desc.scalar(p) = value
	case fieldBool:
		*desc.flag(p) = checked
	case fieldSet:
		slot := desc.set(p)
		*slot = toggle(*slot, value, checked)
	}
	return nil
}

func toggle(values []string, value string, checked bool) []string {
	present := false
	for _, v := range values {
		if v == value {
			present = true
			break
		}
	}
	if checked {
		if present {
			return values
		}
		return append(values, value)
	}
	if !present {
		return values
	}
	out := make([]string, 0, len(values)-1)
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

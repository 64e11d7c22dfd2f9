package intake

import (
	"fmt"

	"checkingo/models"
	"checkingo/utils"
)

// planCatalog is the fixed set of service tiers offered after submission.
var planCatalog = []models.Plan{
	{
		ID:    "initial-consultation",
		Title: "Initial Consultation",
		Price: "100",
		Desc: "Not sure where to start? We find the perfect destination together, " +
			"and the consultation fee is fully deducted if you hire one of the advisory plans.",
	},
	{
		ID:       "essential-advisory",
		Title:    "Essential Advisory",
		Price:    "150",
		OldPrice: "200",
		Desc: "Full focus on your biggest headache. Pick flights OR lodging and we hunt " +
			"down the offers you would never find on your own.",
	},
	{
		ID:       "complete-advisory",
		Title:    "Complete Advisory",
		Price:    "200",
		OldPrice: "250",
		Popular:  true,
		Desc: "The smart traveler's favorite. We handle everything: flights AND lodging, " +
			"finding the combination that saves you time and money.",
	},
	{
		ID:       "premium-itinerary",
		Title:    "Premium + Itinerary",
		Price:    "250",
		OldPrice: "300",
		Desc: "The full VIP experience. On top of the complete advisory we build your " +
			"personalized day-by-day itinerary. You only pack and enjoy.",
	},
}

// PlansFor returns the plan cards with wa.me links carrying the
// traveler's first name and the plan title to the agency number.
func PlansFor(travelerName, agencyNumber string) []models.Plan {
	first := utils.FirstName(travelerName, "Traveler")

	out := make([]models.Plan, len(planCatalog))
	for i, plan := range planCatalog {
		message := fmt.Sprintf(
			"Hello! My name is %s. I filled out the Check-in, GO! form and I would like to hire the *%s* plan. Can we talk?",
			first, plan.Title,
		)
		plan.WhatsAppLink = utils.WhatsAppLink(agencyNumber, message)
		out[i] = plan
	}
	return out
}

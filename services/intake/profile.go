package intake

import (
	"strconv"
	"time"

	"checkingo/models"
)

// FinalizeProfile validates the contact fields and stamps the submission
// identity. Name and WhatsApp number are the only hard-required fields;
// everything else may be left empty.
//
// The id is the current Unix time in milliseconds, formatted as a string.
// Two finalizations within the same millisecond would collide; this weak
// guarantee is inherited deliberately and must not be relied upon as a
// uniqueness invariant.
func FinalizeProfile(p *models.TravelerProfile) error {
	if p.Name == "" || p.WhatsAppNumber == "" {
		return NewValidationError("name and WhatsApp number are required")
	}
	if p.ID != "" {
		return NewValidationError("profile already submitted")
	}

	now := time.Now()
	p.ID = strconv.FormatInt(now.UnixMilli(), 10)
	p.SubmittedAt = now.Format(time.RFC3339)
	return nil
}

package scheduling

import (
	"time"

	"mindwell/models"

	"github.com/google/uuid"
)

// CustomRequestInput is the raw user-proposed session time.
type CustomRequestInput struct {
	Date     string               `json:"date"`
	Time     string               `json:"time"`
	Duration models.DurationClass `json:"duration"`
	Notes    string               `json:"notes"`
}

// ValidateCustomRequest applies the same lead-time rule as the catalogue
// filter, but to the user-supplied instant directly. The violation is
// reported under its own code because the remedy differs from a stale
// catalogue slot: the user picks a different time rather than re-confirming.
func ValidateCustomRequest(in CustomRequestInput, userID, therapistID string, now time.Time) (*models.CustomRequest, error) {
	if in.Date == "" || in.Time == "" {
		return nil, NewBookingError(CodeMissingDateOrTime, "custom request needs both a date and a time")
	}
	proposed, err := AbsoluteTime(in.Date, in.Time, now.Location())
	if err != nil {
		return nil, NewBookingError(CodeMissingDateOrTime, err.Error())
	}
	if !proposed.After(now.Add(MinimumLeadTime)) {
		return nil, NewBookingError(CodeLeadTimeViolation, "proposed time does not satisfy the minimum lead time")
	}
	duration := in.Duration
	if !duration.Valid() {
		duration = models.DurationShort
	}
	return &models.CustomRequest{
		ID:          uuid.New().String(),
		UserID:      userID,
		TherapistID: therapistID,
		Date:        in.Date,
		Time:        in.Time,
		Duration:    duration,
		Notes:       in.Notes,
		Status:      "pending",
		RequestedAt: now,
	}, nil
}

package scheduling

import (
	"time"

	"mindwell/models"
)

// ImmediateDuration is the fixed length of an immediate session; the
// immediate path always books the short duration class.
const ImmediateDuration = 30 * time.Minute

// ImmediateDescriptor synthesizes a booking starting at now + MinimumLeadTime
// with the fixed immediate duration and fee. There is no catalogue lookup
// and no user choice; the only gate is the therapist's online signal.
// When the therapist is offline it fails with notOnline and mutates nothing.
func ImmediateDescriptor(userID, therapistID string, now time.Time, online bool, currency string) (*models.BookingDescriptor, error) {
	if !online {
		return nil, NewBookingError(CodeNotOnline, "therapist is not online for immediate sessions")
	}
	start := now.Add(MinimumLeadTime).Truncate(time.Minute)
	end := start.Add(ImmediateDuration)
	fee, err := Fee(models.DurationShort, models.RequestImmediate)
	if err != nil {
		return nil, err
	}
	return &models.BookingDescriptor{
		TherapistID: therapistID,
		UserID:      userID,
		Date:        start.Format(dateLayout),
		Start:       start.Format("3:04 PM"),
		End:         end.Format("3:04 PM"),
		Duration:    models.DurationShort,
		Request:     models.RequestImmediate,
		Fee:         fee,
		Currency:    currency,
	}, nil
}

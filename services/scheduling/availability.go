package scheduling

import (
	"context"
	"fmt"
	"time"

	"mindwell/models"
)

// MinimumLeadTime is the smallest interval allowed between "now" and a
// bookable session start.
const MinimumLeadTime = 15 * time.Minute

// BookedSlotStore answers whether a template window on a date is already
// reserved. The committed-bookings subtraction is an extension point: the
// production store lives with the external system of record, and until one
// is wired in the engine runs with the unimplemented stub below.
type BookedSlotStore interface {
	IsBooked(ctx context.Context, date, start, end string) (bool, error)
}

// UnimplementedBookedSlotStore treats every window as free.
type UnimplementedBookedSlotStore struct{}

func (UnimplementedBookedSlotStore) IsBooked(context.Context, string, string, string) (bool, error) {
	return false, nil
}

// AvailableSlots computes the catalogue windows legal to book on date for
// the given duration class, judged against the injected now. Pure function
// of its inputs; ordering follows the catalogue (chronological, stable).
//
// Rules:
//   - date before now's calendar date: nothing is bookable.
//   - date equal to now's calendar date: only windows starting strictly
//     later than now + MinimumLeadTime survive.
//   - date after now's calendar date: every duration-matching window.
func AvailableSlots(date string, duration models.DurationClass, now time.Time) ([]models.TimeSlotTemplate, error) {
	if !duration.Valid() {
		return nil, fmt.Errorf("unknown duration class %q", duration)
	}
	if _, err := time.ParseInLocation(dateLayout, date, now.Location()); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	today := now.Format(dateLayout)
	if date < today {
		return nil, nil
	}

	cutoff := now.Add(MinimumLeadTime)
	var slots []models.TimeSlotTemplate
	for _, ts := range sessionTemplates {
		if ts.Duration != duration {
			continue
		}
		if date == today {
			absStart, err := AbsoluteTime(date, ts.Start, now.Location())
			if err != nil {
				return nil, fmt.Errorf("bad template %q-%q: %w", ts.Start, ts.End, err)
			}
			if !absStart.After(cutoff) {
				continue
			}
		}
		slots = append(slots, ts)
	}
	return slots, nil
}

// subtractBooked drops windows the committed-bookings store reports as
// reserved. Store failures surface; availability must not silently offer a
// window the store would have excluded.
func subtractBooked(ctx context.Context, store BookedSlotStore, date string, slots []models.TimeSlotTemplate) ([]models.TimeSlotTemplate, error) {
	if store == nil {
		return slots, nil
	}
	var free []models.TimeSlotTemplate
	for _, ts := range slots {
		booked, err := store.IsBooked(ctx, date, ts.Start, ts.End)
		if err != nil {
			return nil, fmt.Errorf("booked-slot lookup failed: %w", err)
		}
		if !booked {
			free = append(free, ts)
		}
	}
	return free, nil
}

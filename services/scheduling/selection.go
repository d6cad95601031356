package scheduling

import (
	"fmt"
	"time"

	"mindwell/models"
)

// SelectionState tracks progress through the standard booking flow.
type SelectionState string

const (
	StateIdle           SelectionState = "idle"
	StateDateChosen     SelectionState = "dateChosen"
	StateDurationChosen SelectionState = "durationChosen"
	StateSlotChosen     SelectionState = "slotChosen"
	StateConfirmed      SelectionState = "confirmed"
)

// Selection is the user's in-progress choice of date, duration and slot.
// It is owned by a single booking session and mutated only by discrete
// user events, each run to completion before the next.
type Selection struct {
	State    SelectionState           `json:"state"`
	Date     string                   `json:"date,omitempty"`
	Duration models.DurationClass     `json:"duration,omitempty"`
	Slot     *models.TimeSlotTemplate `json:"slot,omitempty"`
}

// NewSelection returns an empty selection in the idle state.
func NewSelection() Selection {
	return Selection{State: StateIdle}
}

// SetDate records a new calendar date. Any chosen slot is cleared: a slot
// picked for one date is never carried to another. When a duration class is
// already set, availability is recomputed for the new date.
func (s *Selection) SetDate(date string, now time.Time) ([]models.TimeSlotTemplate, error) {
	if _, err := time.ParseInLocation(dateLayout, date, now.Location()); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	s.Date = date
	s.Slot = nil
	if s.Duration == "" {
		s.State = StateDateChosen
		return nil, nil
	}
	s.State = StateDurationChosen
	return AvailableSlots(s.Date, s.Duration, now)
}

// SetDuration records the duration class and recomputes availability.
// Like SetDate, it always clears the chosen slot, so a short-duration pick
// can never survive a switch to long.
func (s *Selection) SetDuration(duration models.DurationClass, now time.Time) ([]models.TimeSlotTemplate, error) {
	if !duration.Valid() {
		return nil, fmt.Errorf("unknown duration class %q", duration)
	}
	if s.Date == "" {
		return nil, fmt.Errorf("no date chosen")
	}
	s.Duration = duration
	s.Slot = nil
	s.State = StateDurationChosen
	return AvailableSlots(s.Date, s.Duration, now)
}

// ChooseSlot records the user's pick. The slot must be a member of the
// current availability result; a click racing a recomputation lands here
// with a window that is no longer offered and is rejected as stale.
func (s *Selection) ChooseSlot(slot models.TimeSlotTemplate, now time.Time) error {
	if s.Date == "" || s.Duration == "" {
		return fmt.Errorf("date and duration must be chosen before a slot")
	}
	current, err := AvailableSlots(s.Date, s.Duration, now)
	if err != nil {
		return err
	}
	for _, ts := range current {
		if ts.Start == slot.Start && ts.End == slot.End && ts.Duration == slot.Duration {
			s.Slot = &ts
			s.State = StateSlotChosen
			return nil
		}
	}
	return NewBookingError(CodeStaleSlot, "selected slot is no longer available")
}

// Confirm re-validates the chosen slot against a fresh now. The lead-time
// check runs again here regardless of what the availability list said at
// render time, because real time has advanced between render and click.
// On failure the selection stays in slotChosen and the caller re-prompts.
func (s *Selection) Confirm(now time.Time) error {
	if s.Slot == nil {
		return NewBookingError(CodeNoSlotSelected, "confirm attempted with no slot chosen")
	}
	absStart, err := AbsoluteTime(s.Date, s.Slot.Start, now.Location())
	if err != nil {
		return err
	}
	if !absStart.After(now.Add(MinimumLeadTime)) {
		s.State = StateSlotChosen
		return NewBookingError(CodeStaleSlot, "chosen slot no longer satisfies the minimum lead time")
	}
	s.State = StateConfirmed
	return nil
}

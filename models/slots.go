package models

// DurationClass is the coarse session length category used for both slot
// filtering and pricing.
type DurationClass string

const (
	DurationShort DurationClass = "short" // 30-minute session
	DurationLong  DurationClass = "long"  // 60-minute session
)

// Minutes returns the session length for a duration class.
func (d DurationClass) Minutes() int {
	if d == DurationLong {
		return 60
	}
	return 30
}

// Valid reports whether the duration class is a known value.
func (d DurationClass) Valid() bool {
	return d == DurationShort || d == DurationLong
}

// RequestClass is the booking channel a descriptor was produced through.
type RequestClass string

const (
	RequestStandard  RequestClass = "standard"  // catalogue slot
	RequestCustom    RequestClass = "custom"    // user-proposed time, pending approval
	RequestImmediate RequestClass = "immediate" // synthesized near-term slot
)

// TimeSlotTemplate is a statically defined candidate window for a day,
// independent of any specific date. Times are wall-clock strings local to
// the therapist ("9:59 AM", "05:59 PM" or "17:59").
type TimeSlotTemplate struct {
	Start    string        `json:"start"`
	End      string        `json:"end"`
	Duration DurationClass `json:"duration"`
}

// AvailabilityResult is returned to the client after a date or duration
// change recomputes the bookable windows.
type AvailabilityResult struct {
	Date     string             `json:"date"`
	Duration DurationClass      `json:"duration"`
	Slots    []TimeSlotTemplate `json:"slots"`
}

package scheduling

import (
	"errors"
	"fmt"
)

// Error codes for booking validation failures. All of these are terminal at
// the HTTP boundary; none are retried automatically.
const (
	CodeNoSlotSelected    = "noSlotSelected"
	CodeStaleSlot         = "staleSlot"
	CodeLeadTimeViolation = "leadTimeViolation"
	CodeMissingDateOrTime = "missingDateOrTime"
	CodeNotOnline         = "notOnline"
)

// BookingError is a local validation failure in the booking workflow.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{Code: code, Message: msg}
}

// ErrorCode returns the booking error code carried by err, or "" when err
// is not a BookingError.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

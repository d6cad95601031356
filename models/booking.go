package models

// BookingDescriptor is the finalized, priced record handed to the payment
// boundary. The fee is always derived server-side from the duration and
// request class, never taken from client input.
type BookingDescriptor struct {
	TherapistID string        `json:"therapistId"`
	UserID      string        `json:"userId"`
	Date        string        `json:"date"`  // "2006-01-02"
	Start       string        `json:"start"` // wall-clock, e.g. "05:59 PM"
	End         string        `json:"end"`
	Duration    DurationClass `json:"duration"`
	Request     RequestClass  `json:"request"`
	Fee         float64       `json:"fee"`
	Currency    string        `json:"currency"`
}

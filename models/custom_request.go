package models

import "time"

// CustomRequest is a user-proposed session time outside the slot catalogue.
// It is validated against the same lead-time rule as catalogue slots and
// then handed to the pending-approval collaborator; the therapist confirms
// it out of band.
type CustomRequest struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	TherapistID string        `bson:"therapistId" json:"therapistId"`
	Date        string        `bson:"date" json:"date"` // "2006-01-02"
	Time        string        `bson:"time" json:"time"` // wall-clock, e.g. "7:30 PM"
	Duration    DurationClass `bson:"duration" json:"duration"`
	Notes       string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      string        `bson:"status" json:"status"` // "pending"
	RequestedAt time.Time     `bson:"requestedAt" json:"requestedAt"`
}

package scheduling

import (
	"context"

	"mindwell/models"
)

// BookingSession holds the in-progress selection between user events.
type BookingSession struct {
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId"`
	TherapistID string    `json:"therapistId"`
	Selection   Selection `json:"selection"`
}

// BookingSessionService drives the booking workflow: session lifecycle,
// the three booking channels, and the handoff to payment.
type BookingSessionService interface {
	StartSession(ctx context.Context, userID, therapistID string) (*BookingSession, error)
	SetDate(ctx context.Context, sessionID, date string) (*models.AvailabilityResult, error)
	SetDuration(ctx context.Context, sessionID string, duration models.DurationClass) (*models.AvailabilityResult, error)
	ChooseSlot(ctx context.Context, sessionID string, slot models.TimeSlotTemplate) (*BookingSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingDescriptor, *models.Invoice, error)
	CancelSession(ctx context.Context, sessionID string) error

	Availability(ctx context.Context, date string, duration models.DurationClass) (*models.AvailabilityResult, error)
	SubmitCustomRequest(ctx context.Context, userID, therapistID string, in CustomRequestInput) (*models.CustomRequest, error)
	RequestImmediate(ctx context.Context, userID, therapistID string) (*models.BookingDescriptor, *models.Invoice, error)
}

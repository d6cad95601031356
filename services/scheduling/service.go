package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mindwell/models"
	"mindwell/services/notification"
	"mindwell/services/payment"
	"mindwell/services/presence"
	"mindwell/services/tasks"
	"mindwell/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = 30 * time.Minute

// DefaultBookingSessionService is the production implementation. Sessions
// live in Redis; every operation reads "now" exactly once and threads it
// through the filter and validation steps.
type DefaultBookingSessionService struct {
	Cache     *redis.Client
	Payments  payment.Processor
	Approvals tasks.ApprovalSink
	Notifier  notification.NotificationService
	Presence  presence.Service
	Booked    BookedSlotStore
	Currency  string

	// Now is the clock hook; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StartSession creates a booking session for a user and therapist and
// stores it in Redis under a fresh session ID.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, userID, therapistID string) (*BookingSession, error) {
	if userID == "" || therapistID == "" {
		return nil, fmt.Errorf("missing user or therapist ID")
	}
	session := &BookingSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		TherapistID: therapistID,
		Selection:   NewSelection(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetDate records a new date on the session's selection and returns the
// recomputed availability.
func (s *DefaultBookingSessionService) SetDate(ctx context.Context, sessionID, date string) (*models.AvailabilityResult, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	slots, err := session.Selection.SetDate(date, now)
	if err != nil {
		return nil, err
	}
	slots, err = subtractBooked(ctx, s.Booked, date, slots)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &models.AvailabilityResult{Date: date, Duration: session.Selection.Duration, Slots: slots}, nil
}

// SetDuration records the duration class and returns the recomputed
// availability. The previously chosen slot, if any, is gone.
func (s *DefaultBookingSessionService) SetDuration(ctx context.Context, sessionID string, duration models.DurationClass) (*models.AvailabilityResult, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	slots, err := session.Selection.SetDuration(duration, now)
	if err != nil {
		return nil, err
	}
	slots, err = subtractBooked(ctx, s.Booked, session.Selection.Date, slots)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return &models.AvailabilityResult{Date: session.Selection.Date, Duration: duration, Slots: slots}, nil
}

// ChooseSlot records the user's pick after re-checking membership in the
// current availability.
func (s *DefaultBookingSessionService) ChooseSlot(ctx context.Context, sessionID string, slot models.TimeSlotTemplate) (*BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Selection.ChooseSlot(slot, s.now()); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm re-validates the selection against a fresh clock reading, builds
// the booking descriptor and hands it to the payment collaborator. The
// session is removed only after a successful handoff.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, sessionID string) (*models.BookingDescriptor, *models.Invoice, error) {
	logger := utils.GetLogger()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	if err := session.Selection.Confirm(s.now()); err != nil {
		// Persist the post-validation state so the client resumes from it.
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			logger.Error("failed to save session after confirm rejection", zap.Error(saveErr))
		}
		return nil, nil, err
	}

	descriptor, err := DescriptorFromSelection(&session.Selection, session.UserID, session.TherapistID, s.Currency)
	if err != nil {
		return nil, nil, err
	}

	invoice, err := s.Payments.Collect(ctx, *descriptor)
	if err != nil {
		return nil, nil, fmt.Errorf("payment handoff failed: %w", err)
	}

	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logger.Warn("failed to delete booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return descriptor, invoice, nil
}

// CancelSession allows the client to explicitly abandon a booking session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// Availability answers a stateless slot query for a date and duration.
func (s *DefaultBookingSessionService) Availability(ctx context.Context, date string, duration models.DurationClass) (*models.AvailabilityResult, error) {
	slots, err := AvailableSlots(date, duration, s.now())
	if err != nil {
		return nil, err
	}
	slots, err = subtractBooked(ctx, s.Booked, date, slots)
	if err != nil {
		return nil, err
	}
	return &models.AvailabilityResult{Date: date, Duration: duration, Slots: slots}, nil
}

// SubmitCustomRequest validates a user-proposed time, emits it to the
// pending-approval queue and acknowledges the user. The request is not a
// booking yet; the therapist confirms out of band.
func (s *DefaultBookingSessionService) SubmitCustomRequest(ctx context.Context, userID, therapistID string, in CustomRequestInput) (*models.CustomRequest, error) {
	logger := utils.GetLogger()
	if userID == "" || therapistID == "" {
		return nil, fmt.Errorf("missing user or therapist ID")
	}

	req, err := ValidateCustomRequest(in, userID, therapistID, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.Approvals.EnqueueApproval(ctx, tasks.PayloadFromRequest(req)); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		ackErr := s.Notifier.SendUserPush(ctx, userID,
			"Request received",
			fmt.Sprintf("Your session request for %s at %s is awaiting therapist approval.", req.Date, req.Time),
			map[string]string{"requestId": req.ID})
		if ackErr != nil {
			logger.Warn("failed to send custom request acknowledgement", zap.Error(ackErr))
		}
	}
	return req, nil
}

// RequestImmediate synthesizes a near-term session when the therapist is
// online and hands it straight to payment, bypassing the catalogue flow.
func (s *DefaultBookingSessionService) RequestImmediate(ctx context.Context, userID, therapistID string) (*models.BookingDescriptor, *models.Invoice, error) {
	if userID == "" || therapistID == "" {
		return nil, nil, fmt.Errorf("missing user or therapist ID")
	}
	online, err := s.Presence.IsOnline(ctx, therapistID)
	if err != nil {
		return nil, nil, err
	}

	descriptor, err := ImmediateDescriptor(userID, therapistID, s.now(), online, s.Currency)
	if err != nil {
		return nil, nil, err
	}

	invoice, err := s.Payments.Collect(ctx, *descriptor)
	if err != nil {
		return nil, nil, fmt.Errorf("payment handoff failed: %w", err)
	}
	return descriptor, invoice, nil
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

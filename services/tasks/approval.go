package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"mindwell/models"

	"github.com/hibiken/asynq"
)

// TypeApprovalRequest is the task type for custom requests awaiting
// therapist approval.
const TypeApprovalRequest = "approval:request"

// ApprovalPayload carries a custom request to the out-of-band approval
// worker.
type ApprovalPayload struct {
	RequestID   string               `json:"requestId"`
	UserID      string               `json:"userId"`
	TherapistID string               `json:"therapistId"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	Duration    models.DurationClass `json:"duration"`
	Notes       string               `json:"notes,omitempty"`
}

// ApprovalSink is the pending-approval collaborator boundary: the booking
// core emits the record and the approval flow continues elsewhere.
type ApprovalSink interface {
	EnqueueApproval(ctx context.Context, p ApprovalPayload) error
}

// AsynqApprovalSink enqueues approval tasks onto the shared Redis queue.
type AsynqApprovalSink struct {
	Client *asynq.Client
}

func (s *AsynqApprovalSink) EnqueueApproval(ctx context.Context, p ApprovalPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal approval payload: %w", err)
	}
	task := asynq.NewTask(TypeApprovalRequest, payload)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Queue("default")); err != nil {
		return fmt.Errorf("failed to enqueue approval task: %w", err)
	}
	return nil
}

// PayloadFromRequest maps a validated custom request onto the queue payload.
func PayloadFromRequest(req *models.CustomRequest) ApprovalPayload {
	return ApprovalPayload{
		RequestID:   req.ID,
		UserID:      req.UserID,
		TherapistID: req.TherapistID,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Notes:       req.Notes,
	}
}

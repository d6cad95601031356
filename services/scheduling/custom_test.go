package scheduling

import (
	"testing"
	"time"

	"mindwell/models"
)

func TestValidateCustomRequest(t *testing.T) {
	now := time.Date(2026, 9, 10, 18, 10, 0, 0, time.UTC)

	req, err := ValidateCustomRequest(CustomRequestInput{
		Date:     "2026-09-12",
		Time:     "7:30 PM",
		Duration: models.DurationLong,
		Notes:    "prefer evening",
	}, "user-1", "therapist-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ID == "" {
		t.Error("expected a generated request ID")
	}
	if req.Status != "pending" {
		t.Errorf("status = %q, want pending", req.Status)
	}
	if req.Duration != models.DurationLong {
		t.Errorf("duration = %s, want long", req.Duration)
	}
	if !req.RequestedAt.Equal(now) {
		t.Errorf("requestedAt = %v, want %v", req.RequestedAt, now)
	}
}

func TestValidateCustomRequestMissingFields(t *testing.T) {
	now := time.Date(2026, 9, 10, 18, 10, 0, 0, time.UTC)
	cases := []CustomRequestInput{
		{Date: "", Time: "7:30 PM"},
		{Date: "2026-09-12", Time: ""},
		{Date: "", Time: ""},
		{Date: "soonish", Time: "7:30 PM"},
		{Date: "2026-09-12", Time: "evening"},
	}
	for _, in := range cases {
		_, err := ValidateCustomRequest(in, "user-1", "therapist-1", now)
		if ErrorCode(err) != CodeMissingDateOrTime {
			t.Errorf("input %+v: expected %s, got %v", in, CodeMissingDateOrTime, err)
		}
	}
}

func TestValidateCustomRequestLeadTime(t *testing.T) {
	now := time.Date(2026, 9, 10, 18, 10, 0, 0, time.UTC)

	// Ten minutes out: under the lead time.
	_, err := ValidateCustomRequest(CustomRequestInput{
		Date: "2026-09-10",
		Time: "6:20 PM",
	}, "user-1", "therapist-1", now)
	if ErrorCode(err) != CodeLeadTimeViolation {
		t.Errorf("expected %s, got %v", CodeLeadTimeViolation, err)
	}

	// Exactly at the cutoff: still a violation, the bound is exclusive.
	_, err = ValidateCustomRequest(CustomRequestInput{
		Date: "2026-09-10",
		Time: "6:25 PM",
	}, "user-1", "therapist-1", now)
	if ErrorCode(err) != CodeLeadTimeViolation {
		t.Errorf("expected %s at the exact cutoff, got %v", CodeLeadTimeViolation, err)
	}

	// One minute past the cutoff clears it.
	if _, err := ValidateCustomRequest(CustomRequestInput{
		Date: "2026-09-10",
		Time: "6:26 PM",
	}, "user-1", "therapist-1", now); err != nil {
		t.Errorf("unexpected error one minute past the cutoff: %v", err)
	}
}

func TestValidateCustomRequestDefaultsDuration(t *testing.T) {
	now := time.Date(2026, 9, 10, 18, 10, 0, 0, time.UTC)
	req, err := ValidateCustomRequest(CustomRequestInput{
		Date: "2026-09-12",
		Time: "7:30 PM",
	}, "user-1", "therapist-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Duration != models.DurationShort {
		t.Errorf("unset duration should default to short, got %s", req.Duration)
	}
}

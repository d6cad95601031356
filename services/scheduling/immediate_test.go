package scheduling

import (
	"testing"
	"time"

	"mindwell/models"
)

func TestImmediateDescriptorOffline(t *testing.T) {
	now := time.Date(2026, 9, 10, 18, 10, 0, 0, time.UTC)
	desc, err := ImmediateDescriptor("user-1", "therapist-1", now, false, "usd")
	if ErrorCode(err) != CodeNotOnline {
		t.Errorf("expected %s, got %v", CodeNotOnline, err)
	}
	if desc != nil {
		t.Error("offline therapist must not yield a descriptor")
	}
}

func TestImmediateDescriptorOnline(t *testing.T) {
	now := time.Date(2026, 9, 10, 18, 10, 30, 0, time.UTC)
	desc, err := ImmediateDescriptor("user-1", "therapist-1", now, true, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if desc.Date != "2026-09-10" {
		t.Errorf("date = %s, want 2026-09-10", desc.Date)
	}
	if desc.Start != "6:25 PM" {
		t.Errorf("start = %s, want 6:25 PM (now + lead time, truncated to the minute)", desc.Start)
	}
	if desc.End != "6:55 PM" {
		t.Errorf("end = %s, want 6:55 PM", desc.End)
	}
	if desc.Duration != models.DurationShort {
		t.Errorf("duration = %s, want short", desc.Duration)
	}
	if desc.Request != models.RequestImmediate {
		t.Errorf("request = %s, want immediate", desc.Request)
	}
	if desc.Fee != 60 {
		t.Errorf("fee = %.2f, want 60", desc.Fee)
	}
	if desc.Currency != "usd" {
		t.Errorf("currency = %s, want usd", desc.Currency)
	}
}

func TestImmediateDescriptorCrossesMidnight(t *testing.T) {
	now := time.Date(2026, 9, 10, 23, 50, 0, 0, time.UTC)
	desc, err := ImmediateDescriptor("user-1", "therapist-1", now, true, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Date != "2026-09-11" {
		t.Errorf("date = %s, want the next day when now + lead time rolls over", desc.Date)
	}
	if desc.Start != "12:05 AM" {
		t.Errorf("start = %s, want 12:05 AM", desc.Start)
	}
}

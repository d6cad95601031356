package scheduling

import (
	"testing"
	"time"

	"mindwell/models"
)

func TestDescriptorFromSelection(t *testing.T) {
	now := time.Date(2026, 9, 10, 18, 10, 0, 0, time.UTC)
	sel := NewSelection()
	sel.SetDate("2026-09-11", now)
	slots, _ := sel.SetDuration(models.DurationLong, now)
	if err := sel.ChooseSlot(slots[0], now); err != nil {
		t.Fatalf("ChooseSlot: %v", err)
	}
	if err := sel.Confirm(now); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	desc, err := DescriptorFromSelection(&sel, "user-1", "therapist-1", "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Date != "2026-09-11" || desc.Start != sel.Slot.Start || desc.End != sel.Slot.End {
		t.Errorf("descriptor window %s %s-%s does not match the selection", desc.Date, desc.Start, desc.End)
	}
	if desc.Request != models.RequestStandard {
		t.Errorf("request = %s, want standard", desc.Request)
	}
	wantFee, _ := Fee(models.DurationLong, models.RequestStandard)
	if desc.Fee != wantFee {
		t.Errorf("fee = %.2f, want %.2f", desc.Fee, wantFee)
	}
}

func TestDescriptorFromSelectionRequiresConfirmation(t *testing.T) {
	now := time.Date(2026, 9, 10, 18, 10, 0, 0, time.UTC)
	sel := NewSelection()
	sel.SetDate("2026-09-11", now)
	slots, _ := sel.SetDuration(models.DurationShort, now)
	sel.ChooseSlot(slots[0], now)

	if _, err := DescriptorFromSelection(&sel, "user-1", "therapist-1", "usd"); err == nil {
		t.Error("expected error for an unconfirmed selection")
	}
}

func TestDescriptorFromCustomRequest(t *testing.T) {
	req := &models.CustomRequest{
		ID:          "req-1",
		UserID:      "user-1",
		TherapistID: "therapist-1",
		Date:        "2026-09-12",
		Time:        "7:30 PM",
		Duration:    models.DurationLong,
		Status:      "approved",
	}
	desc, err := DescriptorFromCustomRequest(req, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Start != "7:30 PM" || desc.End != "8:30 PM" {
		t.Errorf("window = %s-%s, want 7:30 PM-8:30 PM", desc.Start, desc.End)
	}
	if desc.Request != models.RequestCustom {
		t.Errorf("request = %s, want custom", desc.Request)
	}
	wantFee, _ := Fee(models.DurationLong, models.RequestCustom)
	if desc.Fee != wantFee {
		t.Errorf("fee = %.2f, want %.2f", desc.Fee, wantFee)
	}
}

func TestDescriptorFromCustomRequestBadTime(t *testing.T) {
	req := &models.CustomRequest{Date: "2026-09-12", Time: "whenever", Duration: models.DurationShort}
	if _, err := DescriptorFromCustomRequest(req, "usd"); err == nil {
		t.Error("expected error for an unparseable time")
	}
}

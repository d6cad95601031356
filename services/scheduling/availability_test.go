package scheduling

import (
	"testing"
	"time"

	"mindwell/models"
)

// 18:10 on a fixed day; the short catalogue runs 9:59 AM through 6:29 PM.
var testNow = time.Date(2026, 9, 10, 18, 10, 0, 0, time.UTC)

func TestAvailableSlotsPastDateIsEmpty(t *testing.T) {
	for _, duration := range []models.DurationClass{models.DurationShort, models.DurationLong} {
		slots, err := AvailableSlots("2026-09-09", duration, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 0 {
			t.Errorf("duration %s: expected no slots for a past date, got %d", duration, len(slots))
		}
	}
}

func TestAvailableSlotsFutureDateIsUnfiltered(t *testing.T) {
	slots, err := AvailableSlots("2026-09-11", models.DurationLong, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want []models.TimeSlotTemplate
	for _, ts := range Templates() {
		if ts.Duration == models.DurationLong {
			want = append(want, ts)
		}
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d long slots, got %d", len(want), len(slots))
	}
	for i := range slots {
		if slots[i] != want[i] {
			t.Errorf("slot %d: got %v, want %v (ordering must be chronological and stable)", i, slots[i], want[i])
		}
	}
}

func TestAvailableSlotsSameDayAppliesLeadTime(t *testing.T) {
	// At 18:10 the cutoff is 18:25: every short window except 6:29 PM has
	// already started or starts too soon.
	slots, err := AvailableSlots("2026-09-10", models.DurationShort, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected exactly one short slot, got %d: %v", len(slots), slots)
	}
	if slots[0].Start != "6:29 PM" {
		t.Errorf("expected the 6:29 PM window, got %s", slots[0].Start)
	}
}

func TestAvailableSlotsLeadTimeBoundaryIsExclusive(t *testing.T) {
	// now + 15m lands exactly on the 6:29 PM start; "not strictly later"
	// means the window is out.
	now := time.Date(2026, 9, 10, 18, 14, 0, 0, time.UTC)
	slots, err := AvailableSlots("2026-09-10", models.DurationShort, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ts := range slots {
		if ts.Start == "6:29 PM" {
			t.Error("window starting exactly at now+leadTime must be excluded")
		}
	}
}

func TestAvailableSlotsNeverIncludesLeadTimeViolations(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		now := time.Date(2026, 9, 10, hour, 10, 0, 0, time.UTC)
		cutoff := now.Add(MinimumLeadTime)
		for _, duration := range []models.DurationClass{models.DurationShort, models.DurationLong} {
			slots, err := AvailableSlots("2026-09-10", duration, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, ts := range slots {
				absStart, err := AbsoluteTime("2026-09-10", ts.Start, time.UTC)
				if err != nil {
					t.Fatalf("bad template: %v", err)
				}
				if !absStart.After(cutoff) {
					t.Errorf("now=%v duration=%s: slot %s violates the lead time", now, duration, ts.Start)
				}
			}
		}
	}
}

func TestAvailableSlotsRejectsBadInput(t *testing.T) {
	if _, err := AvailableSlots("2026-09-10", "weekend", testNow); err == nil {
		t.Error("expected error for unknown duration class")
	}
	if _, err := AvailableSlots("next tuesday", models.DurationShort, testNow); err == nil {
		t.Error("expected error for malformed date")
	}
}

package scheduling

import (
	"testing"

	"mindwell/models"
)

func TestFeeIsPure(t *testing.T) {
	a, err := Fee(models.DurationShort, models.RequestStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Fee(models.DurationShort, models.RequestStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("identical arguments produced different fees: %.2f vs %.2f", a, b)
	}
}

func TestFeeTableValues(t *testing.T) {
	cases := []struct {
		duration models.DurationClass
		request  models.RequestClass
		want     float64
	}{
		{models.DurationShort, models.RequestStandard, 45},
		{models.DurationLong, models.RequestStandard, 80},
		{models.DurationShort, models.RequestCustom, 55},
		{models.DurationLong, models.RequestCustom, 95},
		{models.DurationShort, models.RequestImmediate, 60},
		{models.DurationLong, models.RequestImmediate, 60}, // immediate ignores duration
	}
	for _, tc := range cases {
		got, err := Fee(tc.duration, tc.request)
		if err != nil {
			t.Errorf("Fee(%s, %s): unexpected error: %v", tc.duration, tc.request, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Fee(%s, %s) = %.2f, want %.2f", tc.duration, tc.request, got, tc.want)
		}
	}
}

func TestFeeDistinctAcrossClasses(t *testing.T) {
	shortStandard, _ := Fee(models.DurationShort, models.RequestStandard)
	longCustom, _ := Fee(models.DurationLong, models.RequestCustom)
	if shortStandard == longCustom {
		t.Error("short/standard and long/custom must price differently")
	}
}

func TestFeeUnknownCombination(t *testing.T) {
	if _, err := Fee("weekend", models.RequestStandard); err == nil {
		t.Error("expected error for unknown duration class")
	}
	if _, err := Fee(models.DurationShort, "walkin"); err == nil {
		t.Error("expected error for unknown request class")
	}
}

package scheduling

import (
	"fmt"

	"mindwell/models"
)

// Session fees are flat per (duration, request) pair. Payment correctness
// depends on this table, so it stays a lookup rather than a formula; if
// dynamic pricing ever lands, this is the seam to replace.
type feeKey struct {
	Duration models.DurationClass
	Request  models.RequestClass
}

var feeTable = map[feeKey]float64{
	{models.DurationShort, models.RequestStandard}: 45,
	{models.DurationLong, models.RequestStandard}:  80,
	{models.DurationShort, models.RequestCustom}:   55,
	{models.DurationLong, models.RequestCustom}:    95,
}

// immediateFee applies to every immediate session regardless of duration
// class; immediate sessions are always the short duration.
const immediateFee float64 = 60

// Fee returns the flat amount for a duration and request class. It reads
// nothing but its arguments and the static table.
func Fee(duration models.DurationClass, request models.RequestClass) (float64, error) {
	if request == models.RequestImmediate {
		return immediateFee, nil
	}
	fee, ok := feeTable[feeKey{duration, request}]
	if !ok {
		return 0, fmt.Errorf("no fee defined for duration %q request %q", duration, request)
	}
	return fee, nil
}

package scheduling

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// clockLayouts are the accepted wall-clock formats for template and custom
// request times. Both 12-hour and 24-hour forms appear in stored data.
var clockLayouts = []string{"3:04 PM", "03:04 PM", "15:04"}

// ParseClock normalizes a wall-clock string to minutes from midnight.
// The am/pm -> 24h conversion happens here and nowhere else; comparing a
// 12-hour clock value against an absolute instant without going through
// this step is how off-by-twelve-hour bugs happen.
func ParseClock(s string) (int, error) {
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized clock value %q", s)
}

// FormatClock renders minutes-from-midnight back into the 12-hour form
// used by templates and descriptors.
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	t := time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// AbsoluteTime projects a wall-clock value onto a calendar date, in the
// given location, producing the absolute instant the session would start.
func AbsoluteTime(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	mins, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(mins) * time.Minute), nil
}

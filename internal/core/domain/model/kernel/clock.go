package kernel

import (
	"fmt"
	"time"
)

// Clock supplies the current time to use cases and jobs.
type Clock interface {
	Now() time.Time
}

// FixedZoneClock reports wall-clock time in a zone with a constant UTC offset.
// The offset never follows daylight saving rules, so every comparison made
// against it is stable across the year.
type FixedZoneClock struct {
	loc *time.Location
	now func() time.Time
}

// NewFixedZoneClock builds a clock for the given offset in minutes east of UTC,
// e.g. 180 for UTC+03:00. Offsets outside [-14h, +14h] are rejected.
func NewFixedZoneClock(offsetMinutes int) (FixedZoneClock, error) {
	const maxOffset = 14 * 60
	if offsetMinutes < -maxOffset || offsetMinutes > maxOffset {
		return FixedZoneClock{}, fmt.Errorf("utc offset %d minutes is out of range", offsetMinutes)
	}
	return FixedZoneClock{
		loc: time.FixedZone(zoneName(offsetMinutes), offsetMinutes*60),
		now: time.Now,
	}, nil
}

// WithNow returns a copy of the clock that reads time from now. Tests use it to pin the clock.
func (c FixedZoneClock) WithNow(now func() time.Time) FixedZoneClock {
	c.now = now
	return c
}

func (c FixedZoneClock) Now() time.Time {
	return c.now().In(c.loc)
}

// Location returns the fixed zone, used to bucket timestamps by local day and month.
func (c FixedZoneClock) Location() *time.Location {
	return c.loc
}

func zoneName(offsetMinutes int) string {
	sign := '+'
	if offsetMinutes < 0 {
		sign = '-'
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}

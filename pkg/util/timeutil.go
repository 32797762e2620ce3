package util

import "time"

// now is swapped by tests that need a fixed clock.
var now = time.Now

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return now().UTC()
}

// Elapsed reports the time since start, never negative.
func Elapsed(start time.Time) time.Duration {
	d := NowUTC().Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

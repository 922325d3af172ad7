package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Every engine entry point that needs "today" takes an explicit time or a
// Clock, so output stays reproducible when a test pins the reference date.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

package clock

import (
	"time"

	"leetcode-revision/internal/domain/ports"
)

// System reads the wall clock.
type System struct{}

var _ ports.Clock = System{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

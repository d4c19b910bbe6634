package core

import "time"

// Clock accumulates game time from the elapsed durations the platform reports.
// Physics is stepped per tick; timers that must survive frame drops read Now.
type Clock struct {
	now   time.Duration
	ticks uint64
}

// Advance records one tick that took the given wall-clock time.
// Negative durations are treated as zero so time never runs backward.
func (c *Clock) Advance(elapsed time.Duration) {
	if elapsed > 0 {
		c.now += elapsed
	}
	c.ticks++
}

// Now returns the total game time since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Ticks returns how many ticks have been recorded.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// TickInterval returns the duration of a single tick at the given rate.
// Non-positive rates fall back to 60 Hz.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

package audio

import "time"

// Cooldown rate-limits a trigger to once per interval
type Cooldown struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewCooldown creates a cooldown on the wall clock
func NewCooldown(interval time.Duration) *Cooldown {
	return &Cooldown{interval: interval, now: time.Now}
}

// Allow reports whether the trigger may fire now and, if so, arms the cooldown.
// A suppressed trigger does not extend the window.
func (c *Cooldown) Allow() bool {
	t := c.now()
	if !c.last.IsZero() && t.Sub(c.last) < c.interval {
		return false
	}
	c.last = t
	return true
}

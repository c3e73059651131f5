package core

import (
	"fmt"
	"time"
)

// Clock accumulates play time across pause/resume boundaries.
// All methods take the current time on the session's own clock.
type Clock struct {
	accumulated time.Duration
	since       time.Duration
	running     bool
}

// Start begins or resumes accumulation. Calling it while running is a no-op.
func (c *Clock) Start(now time.Duration) {
	if c.running {
		return
	}
	c.since = now
	c.running = true
}

// Pause stops accumulation, keeping the time so far.
func (c *Clock) Pause(now time.Duration) {
	if !c.running {
		return
	}
	c.accumulated += now - c.since
	c.running = false
}

// Running reports whether time is being accumulated.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the accumulated play time at now.
func (c *Clock) Elapsed(now time.Duration) time.Duration {
	if c.running {
		return c.accumulated + now - c.since
	}
	return c.accumulated
}

// Reset clears the clock.
func (c *Clock) Reset() {
	*c = Clock{}
}

// FormatElapsed renders a duration as MM:SS.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

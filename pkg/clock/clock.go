// Package clock provides the pausable wall-clock timer that scores a run.
// It only accumulates elapsed time; the suspension coordinator decides when
// it pauses and resumes.
package clock

import "time"

type Clock struct {
	now         func() time.Time
	running     bool
	startedAt   time.Time
	accumulated time.Duration
}

func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithNow creates a clock with an injected time source for tests.
func NewWithNow(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start resets and starts the clock.
func (c *Clock) Start() {
	c.accumulated = 0
	c.startedAt = c.now()
	c.running = true
}

// Pause stops accumulation. Pausing a paused clock is a no-op.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.accumulated += c.now().Sub(c.startedAt)
	c.running = false
}

// Resume restarts accumulation. Resuming a running clock is a no-op.
func (c *Clock) Resume() {
	if c.running {
		return
	}
	c.startedAt = c.now()
	c.running = true
}

// Stop pauses the clock and returns the final elapsed time.
func (c *Clock) Stop() time.Duration {
	c.Pause()
	return c.accumulated
}

// Reset zeroes the clock without starting it.
func (c *Clock) Reset() {
	c.accumulated = 0
	c.running = false
}

// Running reports whether the clock is accumulating.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the accumulated run time.
func (c *Clock) Elapsed() time.Duration {
	if !c.running {
		return c.accumulated
	}
	return c.accumulated + c.now().Sub(c.startedAt)
}

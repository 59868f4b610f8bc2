package game

import "time"

// Clock measures simulation time. It only advances while running, so a
// pause never shows up as a jump in the animation.
type Clock struct {
	now func() time.Time

	running bool
	fresh   bool
	last    time.Time
	elapsed time.Duration
}

// NewClock creates a clock, optionally already running.
func NewClock(running bool) *Clock {
	return &Clock{
		now:     time.Now,
		running: running,
		fresh:   true,
	}
}

// Running reports whether simulation time advances.
func (c *Clock) Running() bool {
	return c.running
}

// Toggle pauses or resumes the clock and returns the new state.
func (c *Clock) Toggle() bool {
	c.running = !c.running
	if c.running {
		c.fresh = true
	}
	return c.running
}

// Tick returns the seconds elapsed since the previous tick. It returns 0
// while paused and on the first tick after starting or resuming.
func (c *Clock) Tick() float64 {
	if !c.running {
		return 0
	}
	t := c.now()
	if c.fresh {
		c.fresh = false
		c.last = t
		return 0
	}
	dt := t.Sub(c.last)
	c.last = t
	c.elapsed += dt
	return dt.Seconds()
}

// Elapsed returns the total simulation time.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

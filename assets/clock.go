package assets

import "time"

// Clock counts milliseconds since it was created, minus the time spent
// paused. Delay does not block: it starts a hold that the game loop checks
// with Holding, during which no game logic runs and the last presented frame
// stays on screen.
type Clock struct {
	now func() time.Time

	start     time.Time
	holdUntil time.Time
	pausedAt  time.Time
	paused    time.Duration
}

func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{now: now, start: now()}
}

func (c *Clock) Ticks() int64 {
	at := c.now()
	if !c.pausedAt.IsZero() {
		at = c.pausedAt
	}
	return (at.Sub(c.start) - c.paused).Milliseconds()
}

// Delay extends the hold by ms. Delays issued while a hold is running queue
// up behind it, so each one runs for its full length.
func (c *Clock) Delay(ms int64) {
	from := c.now()
	if c.holdUntil.After(from) {
		from = c.holdUntil
	}
	c.holdUntil = from.Add(time.Duration(ms) * time.Millisecond)
}

// Holding reports whether a Delay is still running.
func (c *Clock) Holding() bool {
	return c.now().Before(c.holdUntil)
}

// SetPaused freezes or resumes Ticks. A hold keeps running while paused.
func (c *Clock) SetPaused(paused bool) {
	switch {
	case paused && c.pausedAt.IsZero():
		c.pausedAt = c.now()
	case !paused && !c.pausedAt.IsZero():
		c.paused += c.now().Sub(c.pausedAt)
		c.pausedAt = time.Time{}
	}
}

func (c *Clock) Paused() bool { return !c.pausedAt.IsZero() }

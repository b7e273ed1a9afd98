package engine

import (
	"sync"
	"time"
)

// DefaultCounterDuration is how long a metric takes to reach its target.
const DefaultCounterDuration = time.Second

// Counter animates a displayed numeric value toward a target. Each call
// to SetTarget restarts the animation from whatever value is currently
// displayed, so rapid retargeting never snaps back to zero and never
// stacks concurrent animations. Interpolation is linear, monotonic from
// start to target, and lands exactly on the target once the duration
// elapses. Counters are independent; one per metric.
type Counter struct {
	mu        sync.Mutex
	start     float64
	target    float64
	startedAt time.Time
	duration  time.Duration
	now       func() time.Time
}

// NewCounter returns a counter displaying zero. A non-positive duration
// falls back to DefaultCounterDuration; a nil clock uses time.Now.
func NewCounter(duration time.Duration, now func() time.Time) *Counter {
	if duration <= 0 {
		duration = DefaultCounterDuration
	}
	if now == nil {
		now = time.Now
	}
	return &Counter{duration: duration, now: now, startedAt: now()}
}

// SetTarget cancels any in-flight animation and starts a new one from
// the currently displayed value toward target.
func (c *Counter) SetTarget(target float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	at := c.now()
	c.start = c.valueAt(at)
	c.target = target
	c.startedAt = at
}

// Value samples the currently displayed value.
func (c *Counter) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valueAt(c.now())
}

// Target returns the value the counter is converging to.
func (c *Counter) Target() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *Counter) valueAt(t time.Time) float64 {
	elapsed := t.Sub(c.startedAt)
	if elapsed >= c.duration {
		return c.target
	}
	if elapsed <= 0 {
		return c.start
	}
	progress := float64(elapsed) / float64(c.duration)
	return c.start + (c.target-c.start)*progress
}

package driver

import "time"

// Clock is a monotonic elapsed-time source
type Clock interface {
	Elapsed() time.Duration
}

// MonotonicClock measures time since it was created using the runtime's
// monotonic reading, so wall-clock jumps do not affect the animation.
type MonotonicClock struct {
	start time.Time
}

func NewClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// StepClock advances by a fixed step on every reading. Offline renders use it
// so the output depends only on the frame count.
type StepClock struct {
	Step time.Duration
	now  time.Duration
}

// NewStepClock returns a clock whose first reading is 0
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{Step: step, now: -step}
}

func (c *StepClock) Elapsed() time.Duration {
	c.now += c.Step
	return c.now
}

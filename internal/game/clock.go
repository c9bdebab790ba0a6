package game

// FixedStep accumulates wall-clock time and hands it out in whole steps.
type FixedStep struct {
	Step     float64
	MaxFrame float64

	acc  float64
	time float64
}

// DefaultStep replaces a non-positive step.
const DefaultStep = 0.05

// NewFixedStep builds a clock. A step <= 0 falls back to DefaultStep and a
// maxFrame below the step is raised to it.
func NewFixedStep(step, maxFrame float64) *FixedStep {
	if step <= 0 {
		step = DefaultStep
	}
	return &FixedStep{Step: step, MaxFrame: max(maxFrame, step)}
}

// Advance adds frameTime, clamped to [0, MaxFrame], and returns the number of
// steps to simulate and the leftover fraction of a step.
func (c *FixedStep) Advance(frameTime float64) (steps int, alpha float64) {
	if c.Step <= 0 {
		return 0, 0
	}
	if frameTime < 0 {
		frameTime = 0
	}
	if frameTime > c.MaxFrame {
		frameTime = c.MaxFrame
	}
	c.acc += frameTime
	for c.acc >= c.Step {
		c.acc -= c.Step
		c.time += c.Step
		steps++
	}
	return steps, c.acc / c.Step
}

// Time is the simulated time consumed so far.
func (c *FixedStep) Time() float64 {
	return c.time
}

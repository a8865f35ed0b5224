package vmath

// Cast is an unbounded ray walker from an origin along a fixed heading
// Zero-allocation iterator in the shape of a grid traverser: call Next, then read Pos
//
//	c := vmath.NewCast(from, toward)
//	for c.Next() && c.Travelled() <= maxLen {
//		p := c.Pos()
//	}
type Cast struct {
	origin  Vec
	step    Vec
	index   int
	started bool
	done    bool
}

// NewCast creates a walker from origin heading toward the given point
// A heading of zero length yields origin once and stops
func NewCast(origin, toward Vec) Cast {
	return Cast{
		origin: origin,
		step:   toward.Sub(origin).Normalize().Scale(StepSize),
	}
}

// Next advances to the next position, returns false once exhausted
func (c *Cast) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		return true
	}
	if c.step.IsZero() {
		c.done = true
		return false
	}
	c.index++
	return true
}

// Pos returns the current world position
func (c *Cast) Pos() Vec {
	return c.origin.Add(c.step.Scale(float64(c.index)))
}

// Travelled returns distance from origin to the current position
func (c *Cast) Travelled() float64 {
	return float64(c.index) * StepSize
}

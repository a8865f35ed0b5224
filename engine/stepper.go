package engine

import "time"

// Stepper converts wall-clock frames into a whole number of fixed simulation ticks
// Leftover time carries into the next frame; a long stall is capped at maxCatchUp ticks
// and the excess dropped so the simulation never spirals
type Stepper struct {
	clock      Clock
	step       time.Duration
	maxCatchUp int

	last    time.Time
	pending time.Duration

	// Rate reporting
	windowStart time.Time
	windowTicks int
	rate        float64
}

// NewStepper creates a stepper starting at the clock's current time
func NewStepper(clock Clock, step time.Duration, maxCatchUp int) *Stepper {
	now := clock.Now()
	return &Stepper{
		clock:       clock,
		step:        step,
		maxCatchUp:  max(maxCatchUp, 1),
		last:        now,
		windowStart: now,
	}
}

// Step returns how many fixed ticks are due since the previous call
func (s *Stepper) Step() int {
	now := s.clock.Now()
	s.pending += now.Sub(s.last)
	s.last = now

	ticks := int(s.pending / s.step)
	if ticks > s.maxCatchUp {
		ticks = s.maxCatchUp
		s.pending = 0
	} else {
		s.pending -= time.Duration(ticks) * s.step
	}

	s.windowTicks += ticks
	if window := now.Sub(s.windowStart); window >= time.Second {
		s.rate = float64(s.windowTicks) / window.Seconds()
		s.windowTicks = 0
		s.windowStart = now
	}
	return ticks
}

// Interval returns the fixed tick duration
func (s *Stepper) Interval() time.Duration {
	return s.step
}

// Rate returns the measured tick rate over the last full second, 0 before the first report
func (s *Stepper) Rate() float64 {
	return s.rate
}

package vmath

import "math"

// Ray is a world-space segment from Start to End
type Ray struct {
	Start, End Vec
}

// Degenerate reports whether the ray has zero length
func (r Ray) Degenerate() bool {
	return r.Start.Equal(r.End)
}

// Length returns the segment length in world units
func (r Ray) Length() float64 {
	return r.End.Sub(r.Start).Mag()
}

// Direction returns the unit heading from Start to End, zero for a degenerate ray
func (r Ray) Direction() Vec {
	return r.End.Sub(r.Start).Normalize()
}

// Angle returns the unsigned angle in radians, in [0, π], between the hanging direction
// (End toward Start) and straight down, measured in cell space
// Mirrored rays report the same angle
func (r Ray) Angle() float64 {
	if r.Degenerate() {
		return 0
	}
	hang := r.Start.Sub(r.End).ToCellSpace()
	return math.Atan2(math.Abs(hang.X), hang.Y)
}

// March returns world positions from Start to End spaced StepSize apart
// The first element is exactly Start and the last exactly End, a degenerate ray yields [Start]
func (r Ray) March() []Vec {
	return r.AppendMarch(nil)
}

// AppendMarch appends the marched positions to dst, reusing its capacity
func (r Ray) AppendMarch(dst []Vec) []Vec {
	dst = dst[:0]
	if r.Degenerate() {
		return append(dst, r.Start)
	}

	delta := r.End.Sub(r.Start)
	length := delta.Mag()
	step := delta.Scale(StepSize / length)

	// Positions are derived from the step index instead of accumulated, so rounding
	// never compounds and the count is exactly ceil(length/StepSize)+1
	n := int(math.Ceil(length / StepSize))
	for i := 0; i < n; i++ {
		dst = append(dst, r.Start.Add(step.Scale(float64(i))))
	}
	return append(dst, r.End)
}

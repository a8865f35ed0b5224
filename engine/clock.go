package engine

import "time"

// Clock is the time source for the stepper and the status line
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock
// time.Now carries a monotonic reading, so tick deltas ignore wall clock jumps
type WallClock struct{}

func NewWallClock() WallClock {
	return WallClock{}
}

func (WallClock) Now() time.Time {
	return time.Now()
}

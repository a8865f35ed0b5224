package game

import "github.com/lixenwraith/splat/vmath"

// Events receives notable player transitions
// Called synchronously from Player.Update, implementations must not block
type Events interface {
	Launched(from vmath.Vec)
	Thrown(anchor vmath.Vec)
	Bounced(pos vmath.Vec, speed float64)
	Died(pos vmath.Vec)
	Respawned(pos vmath.Vec)
	Checkpoint(pos vmath.Vec)
}

// NopEvents discards every event
type NopEvents struct{}

func (NopEvents) Launched(vmath.Vec)         {}
func (NopEvents) Thrown(vmath.Vec)           {}
func (NopEvents) Bounced(vmath.Vec, float64) {}
func (NopEvents) Died(vmath.Vec)             {}
func (NopEvents) Respawned(vmath.Vec)        {}
func (NopEvents) Checkpoint(vmath.Vec)       {}

// MultiEvents fans out to several sinks in order
type MultiEvents []Events

func (m MultiEvents) Launched(from vmath.Vec) {
	for _, e := range m {
		e.Launched(from)
	}
}

func (m MultiEvents) Thrown(anchor vmath.Vec) {
	for _, e := range m {
		e.Thrown(anchor)
	}
}

func (m MultiEvents) Bounced(pos vmath.Vec, speed float64) {
	for _, e := range m {
		e.Bounced(pos, speed)
	}
}

func (m MultiEvents) Died(pos vmath.Vec) {
	for _, e := range m {
		e.Died(pos)
	}
}

func (m MultiEvents) Respawned(pos vmath.Vec) {
	for _, e := range m {
		e.Respawned(pos)
	}
}

func (m MultiEvents) Checkpoint(pos vmath.Vec) {
	for _, e := range m {
		e.Checkpoint(pos)
	}
}

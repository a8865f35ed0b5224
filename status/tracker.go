package status

import (
	"github.com/lixenwraith/splat/game"
	"github.com/lixenwraith/splat/vmath"
)

var _ game.Events = (*Tracker)(nil)

// Tracker counts player transitions into a Registry
type Tracker struct {
	reg *Registry
}

func NewTracker(reg *Registry) *Tracker {
	return &Tracker{reg: reg}
}

func (t *Tracker) Launched(vmath.Vec)         {}
func (t *Tracker) Thrown(vmath.Vec)           { t.reg.Inc(KeyThrows) }
func (t *Tracker) Bounced(vmath.Vec, float64) { t.reg.Inc(KeyBounces) }
func (t *Tracker) Died(vmath.Vec)             { t.reg.Inc(KeyDeaths) }
func (t *Tracker) Respawned(vmath.Vec)        {}
func (t *Tracker) Checkpoint(vmath.Vec)       { t.reg.Inc(KeyCheckpoints) }

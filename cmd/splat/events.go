package main

import (
	"log"

	"github.com/lixenwraith/splat/vmath"
)

// logEvents writes player transitions to the debug log
type logEvents struct{}

func (logEvents) Launched(from vmath.Vec)              { log.Printf("launch from %v", from) }
func (logEvents) Thrown(anchor vmath.Vec)              { log.Printf("tether anchored at %v", anchor) }
func (logEvents) Bounced(pos vmath.Vec, speed float64) { log.Printf("spring at %v speed %.1f", pos, speed) }
func (logEvents) Died(pos vmath.Vec)                   { log.Printf("died at %v", pos) }
func (logEvents) Respawned(pos vmath.Vec)              { log.Printf("respawn at %v", pos) }
func (logEvents) Checkpoint(pos vmath.Vec)             { log.Printf("checkpoint %v", pos) }

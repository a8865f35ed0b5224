package game

import (
	"time"

	"github.com/lixenwraith/splat/engine"
	"github.com/lixenwraith/splat/parameter"
)

// Tuning carries every physics constant the player pipeline reads
// Built from config.Config or DefaultTuning
type Tuning struct {
	Gravity        float64
	AirDrag        float64
	SwingKick      float64
	JumpSpeed      float64
	SpringKick     float64
	MinSpringSpeed float64

	ChainLinkTime  time.Duration
	ChainMaxLength float64

	DeathFrameTime time.Duration
	DeathFrames    []engine.Sprite

	// Tick is the fixed simulation step
	Tick time.Duration
}

// DefaultTuning returns the compiled defaults from package parameter
func DefaultTuning() Tuning {
	frames := make([]engine.Sprite, len(parameter.DeathFrames))
	for i, f := range parameter.DeathFrames {
		frames[i] = engine.SpriteFromStrings(f)
	}

	return Tuning{
		Gravity:        parameter.Gravity,
		AirDrag:        parameter.AirDrag,
		SwingKick:      parameter.SwingKick,
		JumpSpeed:      parameter.JumpSpeed,
		SpringKick:     parameter.SpringKick,
		MinSpringSpeed: parameter.MinSpringSpeed,
		ChainLinkTime:  parameter.ChainLinkTime,
		ChainMaxLength: parameter.ChainMaxLength,
		DeathFrameTime: parameter.DeathFrameTime,
		DeathFrames:    frames,
		Tick:           parameter.UpdateInterval,
	}
}

// dt returns the tick in seconds
func (t *Tuning) dt() float64 {
	return t.Tick.Seconds()
}

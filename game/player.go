package game

import (
	"math"

	"github.com/lixenwraith/splat/engine"
	"github.com/lixenwraith/splat/parameter"
	"github.com/lixenwraith/splat/render"
	"github.com/lixenwraith/splat/stage"
	"github.com/lixenwraith/splat/vmath"
)

// Life is the death overlay state, orthogonal to movement
type Life uint8

const (
	Alive Life = iota
	Dying
)

// Phase summarizes which forces currently act on the player
type Phase uint8

const (
	PhaseAnchored Phase = iota
	PhaseAirborne
	PhaseSwinging
	PhaseDying
)

var phaseNames = [...]string{
	PhaseAnchored: "anchored",
	PhaseAirborne: "airborne",
	PhaseSwinging: "swinging",
	PhaseDying:    "dying",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Player is the swinging character
// Anchored suppresses gravity, drag and tether force until the next launch
type Player struct {
	Pos        vmath.Vec
	Vel        vmath.Vec
	Anchored   bool
	Checkpoint vmath.Vec
	Chain      Chain

	life   Life
	death  engine.Animation
	tuning Tuning
	events Events
	path   []vmath.Vec
}

// NewPlayer creates a player resting at spawn, which is also the first checkpoint
func NewPlayer(spawn vmath.Vec, tuning Tuning) *Player {
	return &Player{
		Pos:        spawn,
		Anchored:   true,
		Checkpoint: spawn,
		Chain:      NewChain(tuning.ChainLinkTime, parameter.ChainLinkChar),
		death:      engine.NewAnimation(tuning.DeathFrames, tuning.DeathFrameTime, true),
		tuning:     tuning,
		events:     NopEvents{},
	}
}

// SetEvents installs the transition sink, nil restores the no-op sink
func (p *Player) SetEvents(e Events) {
	if e == nil {
		e = NopEvents{}
	}
	p.events = e
}

// Life returns the death overlay state
func (p *Player) Life() Life {
	return p.life
}

// Phase returns the current movement phase
func (p *Player) Phase() Phase {
	switch {
	case p.life == Dying:
		return PhaseDying
	case p.Anchored:
		return PhaseAnchored
	case p.Chain.Deployed():
		return PhaseSwinging
	default:
		return PhaseAirborne
	}
}

// Update advances the player one fixed tick
// Order is fixed: death, launch, tether input, forces, integration, collision, tether hold, chain re-root
func (p *Player) Update(in Intent, tiles Tiles) {
	if p.life == Dying {
		p.death.Update(p.tuning.Tick)
		if p.death.Done() {
			p.respawn()
		}
		return
	}

	launched := p.launch(in)
	p.updateChain(in, tiles)

	// A launch sets velocity outright, so no force acts on the launch tick
	dt := p.tuning.dt()
	if !launched {
		p.Vel = p.Vel.Add(p.force(dt).Scale(dt))
	}

	target := p.Pos.Add(p.Vel.Scale(dt))
	p.path = vmath.Ray{Start: p.Pos, End: target}.AppendMarch(p.path)
	p.walk(tiles)

	if p.Chain.Deployed() && !p.Anchored && p.life == Alive {
		p.Pos = p.Chain.Hold(p.Pos)
	}
	p.Chain.SetStart(p.Pos)
}

func (p *Player) launch(in Intent) bool {
	if !p.Anchored || !in.Launch {
		return false
	}
	dir := in.Target.Sub(p.Pos).Normalize()
	if dir.IsZero() {
		return false
	}
	p.Vel = dir.Scale(p.tuning.JumpSpeed)
	p.Anchored = false
	p.events.Launched(p.Pos)
	return true
}

func (p *Player) updateChain(in Intent, tiles Tiles) {
	if in.Throw {
		if anchor, ok := CastTether(p.Pos, in.Target, tiles, p.tuning.ChainMaxLength); ok {
			p.Chain.Deploy(p.Pos, anchor)
			p.events.Thrown(anchor)
			return
		}
	}
	if in.Release {
		p.Chain.Retract()
		return
	}
	p.Chain.Update(p.Pos, p.tuning.Tick)
}

// force sums gravity, quadratic drag and tether tension for this tick
func (p *Player) force(dt float64) vmath.Vec {
	if p.Anchored {
		return vmath.Zero
	}

	f := vmath.V(0, p.tuning.Gravity)

	// |v|² opposite to v, written as -v*|v| to skip the normalize
	if speed := p.Vel.Mag(); speed > 0 {
		f = f.Add(p.Vel.Scale(-p.tuning.AirDrag * speed))
	}

	if p.Chain.Deployed() {
		f = f.Add(p.tetherForce(dt))
	}
	return f
}

// tetherForce treats the chain as a maximally stiff spring plus pendulum tension
func (p *Player) tetherForce(dt float64) vmath.Vec {
	tangent := p.Chain.Tangent()
	if tangent.IsZero() {
		return vmath.Zero
	}

	// X: along the swing, Y: toward the anchor
	vel := p.Vel.TransformBasis(tangent)

	// Cancel all radial velocity in one step
	spring := -vel.Y / dt
	pendulum := -p.tuning.Gravity * math.Sin(p.Chain.Ray().Angle())
	f := p.Chain.Direction().Scale(spring + pendulum)

	if p.Chain.JustDeployed() {
		// Kick only swings gravity already favors
		gravDir := vmath.Sign(vmath.V(0, 1).TransformBasis(tangent).X)
		velDir := vmath.Sign(vel.X)
		if velDir != 0 && gravDir == velDir {
			f = f.Add(tangent.Scale(p.tuning.SwingKick * velDir / dt))
		}
	}
	return f
}

// walk moves along the marched path, reacting to each newly entered cell
// Bounded by the path length regardless of what the tiles report
func (p *Player) walk(tiles Tiles) {
	prev := vmath.ToCell(p.Pos)

	for _, pos := range p.path[1:] {
		cell := vmath.ToCell(pos)
		if cell == prev {
			p.Pos = pos
			continue
		}
		prev = cell

		switch tiles.Check(pos) {
		case stage.TileSolid:
			p.Vel = vmath.Zero
			p.Anchored = true
			return

		case stage.TileSpring:
			p.bounce(pos)

		case stage.TileHazard:
			p.die(pos)

		case stage.TileCheckpoint:
			snapped := vmath.Snap(pos)
			if !snapped.Equal(p.Checkpoint) {
				p.Checkpoint = snapped
				p.events.Checkpoint(snapped)
			}
		}
		p.Pos = pos
	}
}

// bounce flips vertical velocity with gain, never slower than the spring minimum
func (p *Player) bounce(pos vmath.Vec) {
	speed := max(math.Abs(p.Vel.Y)*p.tuning.SpringKick, p.tuning.MinSpringSpeed)
	if p.Vel.Y < 0 {
		p.Vel.Y = speed
	} else {
		p.Vel.Y = -speed
	}
	p.Anchored = false
	p.events.Bounced(pos, speed)
}

func (p *Player) die(pos vmath.Vec) {
	if p.life == Dying {
		return
	}
	p.life = Dying
	p.death.Reset()
	p.events.Died(pos)
}

func (p *Player) respawn() {
	p.life = Alive
	p.Pos = p.Checkpoint
	p.Vel = vmath.Zero
	p.Anchored = true
	p.Chain.Reset()
	p.events.Respawned(p.Pos)
}

// Draw paints the chain and the player, or the death animation while dying
func (p *Player) Draw(cam *render.Camera, painter render.Painter) {
	if p.life == Dying {
		cam.PaintSprite(painter, p.death.Frame(), p.Pos)
		return
	}
	p.Chain.Draw(cam, painter)
	cam.PaintDot(painter, parameter.PlayerChar, p.Pos)
}

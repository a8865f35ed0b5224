package game

import (
	"time"

	"github.com/lixenwraith/splat/render"
	"github.com/lixenwraith/splat/vmath"
)

// ChainState is the tether deploy/retract lifecycle
type ChainState uint8

const (
	ChainRetracted ChainState = iota
	ChainDeploying
	ChainDeployed
	ChainRetracting
)

var chainStateNames = [...]string{
	ChainRetracted:  "retracted",
	ChainDeploying:  "deploying",
	ChainDeployed:   "deployed",
	ChainRetracting: "retracting",
}

func (s ChainState) String() string {
	if int(s) < len(chainStateNames) {
		return chainStateNames[s]
	}
	return "unknown"
}

// Chain is a rigid tether from the player (ray start) to an anchor (ray end)
// Links become visible one per linkTime while deploying and vanish at the same rate while retracting
type Chain struct {
	ray          vmath.Ray
	path         []vmath.Vec
	state        ChainState
	clock        time.Duration
	links        int
	justDeployed bool
	length       float64
	linkTime     time.Duration
	glyph        rune
}

// NewChain creates a retracted chain
func NewChain(linkTime time.Duration, glyph rune) Chain {
	return Chain{
		linkTime: linkTime,
		glyph:    glyph,
	}
}

// Deploy throws the chain from start to anchor, restarting the link animation
// Valid from any state; JustDeployed holds until the next Update
// The throw distance becomes the rest length the player is held at
func (c *Chain) Deploy(start, anchor vmath.Vec) {
	c.ray = vmath.Ray{Start: start, End: anchor}
	c.length = c.ray.Length()
	c.path = c.ray.AppendMarch(c.path)
	c.state = ChainDeploying
	c.clock = 0
	c.links = 0
	c.justDeployed = true
}

// Retract begins pulling the chain in, visible links shrink from the current count
func (c *Chain) Retract() {
	if c.state == ChainRetracted {
		return
	}
	c.state = ChainRetracting
	c.clock = 0
	c.justDeployed = false
}

// Reset drops the chain immediately
func (c *Chain) Reset() {
	c.state = ChainRetracted
	c.clock = 0
	c.links = 0
	c.justDeployed = false
	c.length = 0
	c.path = c.path[:0]
}

// Update re-roots the chain at start, re-marches it and advances the link animation by dt
func (c *Chain) Update(start vmath.Vec, dt time.Duration) {
	c.justDeployed = false
	if c.state == ChainRetracted {
		return
	}

	c.SetStart(start)

	switch c.state {
	case ChainDeploying:
		c.clock += dt
		for c.clock >= c.linkTime && c.links < len(c.path) {
			c.clock -= c.linkTime
			c.links++
		}
		if c.links >= len(c.path) {
			c.links = len(c.path)
			c.clock = 0
			c.state = ChainDeployed
		}

	case ChainDeployed:
		// Path length follows the player; a fully deployed chain shows every link
		c.links = len(c.path)

	case ChainRetracting:
		c.clock += dt
		for c.clock >= c.linkTime && c.links > 0 {
			c.clock -= c.linkTime
			c.links--
		}
		if c.links == 0 {
			c.clock = 0
			c.state = ChainRetracted
		}
	}
}

// SetStart moves the player end of the chain, the anchor stays fixed
func (c *Chain) SetStart(start vmath.Vec) {
	if c.state == ChainRetracted {
		return
	}
	c.ray.Start = start
	c.path = c.ray.AppendMarch(c.path)
	c.links = min(c.links, len(c.path))
}

// State returns the lifecycle state
func (c *Chain) State() ChainState {
	return c.state
}

// Deployed reports whether the chain constrains the player (deploying or deployed)
func (c *Chain) Deployed() bool {
	return c.state == ChainDeploying || c.state == ChainDeployed
}

// JustDeployed is true between Deploy and the following Update
func (c *Chain) JustDeployed() bool {
	return c.justDeployed
}

// Retracted reports whether the chain is fully in
func (c *Chain) Retracted() bool {
	return c.state == ChainRetracted
}

// Ray returns the current player-to-anchor segment
func (c *Chain) Ray() vmath.Ray {
	return c.ray
}

// Anchor returns the fixed far end
func (c *Chain) Anchor() vmath.Vec {
	return c.ray.End
}

// Length returns the rest length fixed at deploy time
func (c *Chain) Length() float64 {
	return c.length
}

// Hold returns pos moved onto the circle of rest length around the anchor
// Positions on the anchor itself are returned unchanged
func (c *Chain) Hold(pos vmath.Vec) vmath.Vec {
	dir := pos.Sub(c.ray.End).Normalize()
	if dir.IsZero() {
		return pos
	}
	return c.ray.End.Add(dir.Scale(c.length))
}

// Links returns the number of visible links
func (c *Chain) Links() int {
	return c.links
}

// Direction is the unit vector from player toward anchor, zero when degenerate
func (c *Chain) Direction() vmath.Vec {
	return c.ray.Direction()
}

// Tangent is the swing axis, perpendicular to Direction, zero when degenerate
func (c *Chain) Tangent() vmath.Vec {
	return c.ray.Direction().Perpendicular()
}

// Draw paints visible links counted from the player end
func (c *Chain) Draw(cam *render.Camera, p render.Painter) {
	for i := 0; i < c.links && i < len(c.path); i++ {
		cam.PaintDot(p, c.glyph, c.path[i])
	}
}

package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/splat/stage"
	"github.com/lixenwraith/splat/vmath"
)

// tileMap answers by cell, everything unlisted is fill
type tileMap struct {
	cells map[vmath.Cell]stage.TileKind
	fill  stage.TileKind
}

func newTileMap() *tileMap {
	return &tileMap{cells: make(map[vmath.Cell]stage.TileKind)}
}

func (m *tileMap) set(x, y int, k stage.TileKind) *tileMap {
	m.cells[vmath.C(x, y)] = k
	return m
}

func (m *tileMap) Check(pos vmath.Vec) stage.TileKind {
	if k, ok := m.cells[vmath.ToCell(pos)]; ok {
		return k
	}
	return m.fill
}

type recordEvents struct {
	NopEvents
	launched, thrown, bounced, died, respawned, checkpoints int
}

func (r *recordEvents) Launched(vmath.Vec)         { r.launched++ }
func (r *recordEvents) Thrown(vmath.Vec)           { r.thrown++ }
func (r *recordEvents) Bounced(vmath.Vec, float64) { r.bounced++ }
func (r *recordEvents) Died(vmath.Vec)             { r.died++ }
func (r *recordEvents) Respawned(vmath.Vec)        { r.respawned++ }
func (r *recordEvents) Checkpoint(vmath.Vec)       { r.checkpoints++ }

// weightless removes gravity and drag so velocities stay exact
func weightless() Tuning {
	t := DefaultTuning()
	t.Gravity = 0
	t.AirDrag = 0
	return t
}

func airborne(pos, vel vmath.Vec, tuning Tuning) *Player {
	p := NewPlayer(pos, tuning)
	p.Anchored = false
	p.Vel = vel
	return p
}

func TestLaunchSetsVelocity(t *testing.T) {
	tuning := DefaultTuning()
	p := NewPlayer(vmath.Zero, tuning)
	ev := &recordEvents{}
	p.SetEvents(ev)

	p.Update(Intent{Launch: true, Target: vmath.V(10, 0)}, newTileMap())

	assert.False(t, p.Anchored)
	assert.Equal(t, vmath.V(tuning.JumpSpeed, 0), p.Vel)
	assert.InDelta(t, tuning.JumpSpeed*tuning.Tick.Seconds(), p.Pos.X, 1e-9)
	assert.Equal(t, 1, ev.launched)
	assert.Equal(t, PhaseAirborne, p.Phase())
}

func TestLaunchIgnoredWhenAirborne(t *testing.T) {
	p := airborne(vmath.Zero, vmath.V(0, 5), weightless())
	ev := &recordEvents{}
	p.SetEvents(ev)

	p.Update(Intent{Launch: true, Target: vmath.V(10, 0)}, newTileMap())

	assert.Equal(t, vmath.V(0, 5), p.Vel)
	assert.Zero(t, ev.launched)
}

func TestLaunchTowardSelfIgnored(t *testing.T) {
	p := NewPlayer(vmath.V(3, 4), DefaultTuning())
	p.Update(Intent{Launch: true, Target: vmath.V(3, 4)}, newTileMap())

	assert.True(t, p.Anchored)
	assert.True(t, p.Vel.IsZero())
}

func TestCastTetherStopsBeforeSolid(t *testing.T) {
	tiles := newTileMap().set(5, 5, stage.TileSolid)

	anchor, ok := CastTether(vmath.ToWorld(vmath.C(5, 0)), vmath.V(5, 20), tiles, 60)
	require.True(t, ok)
	assert.Equal(t, vmath.ToWorld(vmath.C(5, 4)), anchor)
}

func TestCastTetherMisses(t *testing.T) {
	tiles := newTileMap().set(5, 40, stage.TileSolid)

	_, ok := CastTether(vmath.V(5, 0), vmath.V(5, 200), tiles, 60)
	assert.False(t, ok, "solid beyond max length")

	_, ok = CastTether(vmath.V(5, 0), vmath.V(5, 0), tiles, 60)
	assert.False(t, ok, "zero heading")

	adjacent := newTileMap().set(6, 0, stage.TileSolid)
	_, ok = CastTether(vmath.V(5, 0), vmath.V(20, 0), adjacent, 60)
	assert.False(t, ok, "anchor in own cell")
}

func TestCastTetherHooksSpecialTiles(t *testing.T) {
	for _, kind := range []stage.TileKind{stage.TileSpring, stage.TileHazard, stage.TileCheckpoint} {
		tiles := newTileMap().set(10, 0, kind)
		anchor, ok := CastTether(vmath.Zero, vmath.V(30, 0), tiles, 60)
		require.True(t, ok, kind.String())
		assert.Equal(t, vmath.V(9, 0), anchor, kind.String())
	}
}

func TestThrowDeploysChain(t *testing.T) {
	tiles := newTileMap().set(5, 5, stage.TileSolid)
	p := NewPlayer(vmath.ToWorld(vmath.C(5, 0)), DefaultTuning())
	ev := &recordEvents{}
	p.SetEvents(ev)

	p.Update(Intent{Throw: true, Target: vmath.V(5, 20)}, tiles)

	assert.Equal(t, ChainDeploying, p.Chain.State())
	assert.Equal(t, vmath.ToWorld(vmath.C(5, 4)), p.Chain.Anchor())
	assert.Equal(t, p.Pos, p.Chain.Ray().Start)
	assert.Equal(t, 1, ev.thrown)
	// Still resting: the chain does not pull an anchored player
	assert.True(t, p.Anchored)
	assert.True(t, p.Vel.IsZero())
}

func TestThrowMissLeavesChainRetracted(t *testing.T) {
	p := NewPlayer(vmath.Zero, DefaultTuning())
	p.Update(Intent{Throw: true, Target: vmath.V(10, 0)}, newTileMap())
	assert.True(t, p.Chain.Retracted())
}

func TestReleaseRetractsChain(t *testing.T) {
	tiles := newTileMap().set(0, -5, stage.TileSolid)
	p := NewPlayer(vmath.Zero, DefaultTuning())

	p.Update(Intent{Throw: true, Target: vmath.V(0, -20)}, tiles)
	require.True(t, p.Chain.Deployed())

	p.Update(Intent{Release: true}, tiles)
	assert.Equal(t, ChainRetracting, p.Chain.State())
}

func TestTetherCancelsRadialVelocity(t *testing.T) {
	tuning := DefaultTuning()
	tiles := newTileMap().set(0, 0, stage.TileSolid)

	// Falling straight away from an anchor directly above
	p := airborne(vmath.V(0, 10), vmath.V(0, 30), tuning)
	p.Update(Intent{Throw: true, Target: vmath.V(0, -20)}, tiles)

	require.True(t, p.Chain.Deployed())
	assert.Equal(t, vmath.V(0, 2), p.Chain.Anchor())
	assert.Less(t, math.Abs(p.Vel.Y), 1.0, "radial speed should be cancelled, got %v", p.Vel)
	assert.Zero(t, p.Vel.X, "no swing without tangential speed")
	assert.Equal(t, PhaseSwinging, p.Phase())
}

// ticksFor returns the number of fixed ticks covering d
func ticksFor(d time.Duration, tuning Tuning) int {
	return int(d / tuning.Tick)
}

func TestTetherHoldsLengthWhileHanging(t *testing.T) {
	tuning := DefaultTuning()
	tiles := newTileMap().set(0, 0, stage.TileSolid)

	p := airborne(vmath.V(0, 10), vmath.Zero, tuning)
	p.Update(Intent{Throw: true, Target: vmath.V(0, -20)}, tiles)
	require.True(t, p.Chain.Deployed())
	length := p.Chain.Length()
	require.InDelta(t, 8.0, length, 1e-9)

	for i := 0; i < ticksFor(30*time.Second, tuning); i++ {
		p.Update(Intent{}, tiles)
		require.InDelta(t, length, p.Chain.Ray().Length(), vmath.StepSize, "tick %d pos %v", i, p.Pos)
	}
	assert.InDelta(t, 0.0, p.Pos.X, 1e-9)
	assert.InDelta(t, 10.0, p.Pos.Y, vmath.StepSize)
	assert.False(t, p.Anchored)
}

func TestTetherHoldsLengthWhileSwinging(t *testing.T) {
	tuning := DefaultTuning()
	tiles := newTileMap().set(0, 0, stage.TileSolid)

	p := airborne(vmath.V(8, 10), vmath.Zero, tuning)
	p.Update(Intent{Throw: true, Target: vmath.V(0, 0)}, tiles)
	require.True(t, p.Chain.Deployed())
	length := p.Chain.Length()

	crossed := false
	for i := 0; i < ticksFor(5*time.Second, tuning); i++ {
		p.Update(Intent{}, tiles)
		require.InDelta(t, length, p.Chain.Ray().Length(), vmath.StepSize, "tick %d pos %v", i, p.Pos)
		if p.Pos.X < p.Chain.Anchor().X {
			crossed = true
		}
	}
	assert.True(t, crossed, "swing never passed under the anchor")
	assert.False(t, p.Anchored)
}

func TestMirroredSwingsMatch(t *testing.T) {
	tuning := DefaultTuning()
	tiles := newTileMap().set(0, 0, stage.TileSolid)

	right := airborne(vmath.V(8, 10), vmath.Zero, tuning)
	left := airborne(vmath.V(-8, 10), vmath.Zero, tuning)
	right.Update(Intent{Throw: true, Target: vmath.V(0, 0)}, tiles)
	left.Update(Intent{Throw: true, Target: vmath.V(0, 0)}, tiles)
	require.True(t, right.Chain.Deployed())
	require.True(t, left.Chain.Deployed())
	require.InDelta(t, right.Chain.Anchor().X, -left.Chain.Anchor().X, 1e-9)

	for i := 0; i < 30; i++ {
		right.Update(Intent{}, tiles)
		left.Update(Intent{}, tiles)
		require.InDelta(t, right.Pos.X, -left.Pos.X, 1e-9, "tick %d", i)
		require.InDelta(t, right.Pos.Y, left.Pos.Y, 1e-9, "tick %d", i)
	}
	assert.InDelta(t, right.Chain.Ray().Length(), left.Chain.Ray().Length(), 1e-9)
}

func TestSwingKickFollowsGravity(t *testing.T) {
	tuning := weightless()
	tiles := newTileMap().set(0, 0, stage.TileSolid)

	// Anchor up and to the left; moving right and down along the swing
	p := airborne(vmath.V(20, 10), vmath.V(10, 10), tuning)
	p.Update(Intent{Throw: true, Target: vmath.V(0, 0)}, tiles)
	require.True(t, p.Chain.Deployed())

	tangent := p.Chain.Tangent()
	before := vmath.V(10, 10).TransformBasis(tangent).X
	after := p.Vel.TransformBasis(tangent).X
	assert.Greater(t, math.Abs(after), math.Abs(before))
}

func TestSpringBounce(t *testing.T) {
	tuning := weightless()
	tiles := newTileMap().set(0, 1, stage.TileSpring)

	p := airborne(vmath.V(0, 0.5), vmath.V(0, 60), tuning)
	ev := &recordEvents{}
	p.SetEvents(ev)
	p.Update(Intent{}, tiles)

	assert.InDelta(t, -60*tuning.SpringKick, p.Vel.Y, 1e-9)
	assert.Equal(t, 1, ev.bounced)
	assert.False(t, p.Anchored)
}

func TestSpringBounceMinimumSpeed(t *testing.T) {
	tuning := weightless()
	tiles := newTileMap().set(0, 1, stage.TileSpring)

	p := airborne(vmath.V(0, 0.95), vmath.V(0, 10), tuning)
	p.Update(Intent{}, tiles)

	assert.InDelta(t, -tuning.MinSpringSpeed, p.Vel.Y, 1e-9)
}

func TestSpringBounceOnlyOnEntry(t *testing.T) {
	tuning := weightless()
	tiles := newTileMap().set(0, 1, stage.TileSpring)

	p := airborne(vmath.V(0, 0.5), vmath.V(0, 60), tuning)
	p.Update(Intent{}, tiles)
	bounced := p.Vel.Y

	// Leaving the spring cell must not flip the velocity again
	p.Update(Intent{}, tiles)
	assert.Equal(t, bounced, p.Vel.Y)
}

func TestSolidStopsAndAnchors(t *testing.T) {
	tuning := weightless()
	tiles := newTileMap().set(3, 0, stage.TileSolid)

	p := airborne(vmath.V(2, 0), vmath.V(80, 0), tuning)
	p.Update(Intent{}, tiles)

	assert.True(t, p.Anchored)
	assert.True(t, p.Vel.IsZero())
	assert.Equal(t, vmath.C(2, 0), vmath.ToCell(p.Pos))
	assert.Equal(t, PhaseAnchored, p.Phase())
}

func TestSolidEverywhereTerminates(t *testing.T) {
	tiles := newTileMap()
	tiles.fill = stage.TileSolid

	p := airborne(vmath.Zero, vmath.V(5000, 5000), DefaultTuning())
	p.Update(Intent{}, tiles)

	assert.True(t, p.Anchored)
	assert.True(t, p.Vel.IsZero())
}

func TestOutOfBoundsPassesThrough(t *testing.T) {
	tiles := newTileMap()
	tiles.fill = stage.TileOutOfBounds

	p := airborne(vmath.Zero, vmath.V(100, 0), weightless())
	p.Update(Intent{}, tiles)

	assert.False(t, p.Anchored)
	assert.InDelta(t, 1.0, p.Pos.X, 1e-9)
}

func TestFreeFallMonotonic(t *testing.T) {
	p := airborne(vmath.Zero, vmath.Zero, DefaultTuning())
	tiles := newTileMap()

	prev := p.Pos
	for i := 0; i < 200; i++ {
		p.Update(Intent{}, tiles)
		require.Greater(t, p.Pos.Y, prev.Y, "tick %d", i)
		require.Zero(t, p.Pos.X)
		prev = p.Pos
	}
}

func TestDragBoundsFallSpeed(t *testing.T) {
	tuning := DefaultTuning()
	p := airborne(vmath.Zero, vmath.Zero, tuning)
	tiles := newTileMap()

	for i := 0; i < 2000; i++ {
		p.Update(Intent{}, tiles)
	}
	terminal := math.Sqrt(tuning.Gravity / tuning.AirDrag)
	assert.InDelta(t, terminal, p.Vel.Y, 0.5)
}

func TestHazardDeathAndRespawn(t *testing.T) {
	tuning := weightless()
	tiles := newTileMap().
		set(0, 1, stage.TileCheckpoint).
		set(0, 3, stage.TileHazard)

	spawn := vmath.V(0, 0.5)
	p := airborne(spawn, vmath.V(0, 60), tuning)
	ev := &recordEvents{}
	p.SetEvents(ev)

	for i := 0; i < 100 && p.Life() == Alive; i++ {
		p.Update(Intent{}, tiles)
	}
	require.Equal(t, Dying, p.Life())
	assert.Equal(t, PhaseDying, p.Phase())
	assert.Equal(t, 1, ev.died)
	assert.Equal(t, 1, ev.checkpoints)
	assert.Equal(t, vmath.ToWorld(vmath.C(0, 1)), p.Checkpoint)

	// Physics is frozen while the death animation plays
	frozen := p.Pos
	p.Update(Intent{Launch: true, Target: vmath.V(50, 0)}, tiles)
	assert.Equal(t, frozen, p.Pos)

	for i := 0; i < 1000 && p.Life() == Dying; i++ {
		p.Update(Intent{}, tiles)
	}
	require.Equal(t, Alive, p.Life())
	assert.Equal(t, 1, ev.respawned)
	assert.Equal(t, vmath.ToWorld(vmath.C(0, 1)), p.Pos)
	assert.True(t, p.Vel.IsZero())
	assert.True(t, p.Anchored)
	assert.True(t, p.Chain.Retracted())
}

func TestDeathWithoutCheckpointReturnsToSpawn(t *testing.T) {
	tuning := weightless()
	tiles := newTileMap().set(0, 1, stage.TileHazard)

	spawn := vmath.V(0, 0.5)
	p := airborne(spawn, vmath.V(0, 60), tuning)
	for i := 0; i < 1000 && !(p.Life() == Alive && p.Anchored); i++ {
		p.Update(Intent{}, tiles)
	}
	assert.Equal(t, spawn, p.Pos)
}

func TestDeathDurationMatchesFrames(t *testing.T) {
	tuning := weightless()
	tiles := newTileMap().set(0, 1, stage.TileHazard)

	p := airborne(vmath.V(0, 0.5), vmath.V(0, 60), tuning)
	p.Update(Intent{}, tiles)
	require.Equal(t, Dying, p.Life())

	total := tuning.DeathFrameTime * 5
	ticks := int(total / tuning.Tick)
	for i := 0; i < ticks-1; i++ {
		p.Update(Intent{}, tiles)
	}
	assert.Equal(t, Dying, p.Life(), "respawned early")
	p.Update(Intent{}, tiles)
	assert.Equal(t, Alive, p.Life())
}

package stage

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/splat/vmath"
)

// Perlin shape: smoothing, frequency, octaves
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = int32(3)
)

// GenerateOptions controls procedural cave generation
type GenerateOptions struct {
	Seed          int64
	Width         int
	Height        int
	NoiseScale    float64
	CaveThreshold float64
	FeatureChance float64
}

// Generate carves a cave out of solid rock with perlin noise
// The border stays solid, springs and hazards replace floor tiles, checkpoints sit on
// floors, and the spawn marker is placed on the left-most open floor
// Output is deterministic for a given option set
func Generate(opts GenerateOptions) *Stage {
	w, h := max(opts.Width, 3), max(opts.Height, 3)
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, opts.Seed)
	rng := rand.New(rand.NewSource(opts.Seed))

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = RuneSolid
		}
	}

	// Cells are twice as tall as wide, so sample y at double rate to keep caverns round on screen
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			n := (noise.Noise2D(float64(x)*opts.NoiseScale, float64(y)*opts.NoiseScale*vmath.CellHeight) + 1) / 2
			if n > opts.CaveThreshold {
				grid[y][x] = RuneEmpty
			}
		}
	}

	spawn, found := vmath.Cell{}, false
	for x := 1; x < w-1 && !found; x++ {
		for y := 1; y < h-1; y++ {
			if isFloor(grid, x, y) {
				spawn, found = vmath.C(x, y), true
				break
			}
		}
	}
	if !found {
		// Fully solid noise field: open a pocket above the bottom border
		spawn = vmath.C(1, h-2)
		grid[spawn.Y][spawn.X] = RuneEmpty
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if !isFloor(grid, x, y) || (x == spawn.X && y == spawn.Y) {
				continue
			}
			if rng.Float64() >= opts.FeatureChance {
				continue
			}
			kind := rng.Intn(3)
			// Springs and hazards replace the floor, never the bottom border
			if kind != 2 && y+1 == h-1 {
				continue
			}
			switch kind {
			case 0:
				grid[y+1][x] = RuneSpring
			case 1:
				grid[y+1][x] = RuneHazard
			case 2:
				grid[y][x] = RuneCheckpoint
			}
		}
	}

	grid[spawn.Y][spawn.X] = RuneSpawn

	rows := make([]string, h)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return New(rows)
}

// isFloor reports an open cell standing on solid rock
func isFloor(grid [][]rune, x, y int) bool {
	return grid[y][x] == RuneEmpty && y+1 < len(grid) && grid[y+1][x] == RuneSolid
}

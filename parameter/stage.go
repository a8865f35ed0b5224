package parameter

// Generated stage defaults
const (
	// StageWidth and StageHeight are the generated map size in cells
	StageWidth  = 240
	StageHeight = 60

	// StageNoiseScale is the sample spacing fed to perlin noise per cell
	StageNoiseScale = 0.08

	// StageCaveThreshold carves open space where normalized noise exceeds it
	StageCaveThreshold = 0.47

	// StageFeatureChance is the chance a floor cell grows a spring, hazard or checkpoint
	StageFeatureChance = 0.04
)

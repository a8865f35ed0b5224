// Package audio synthesizes short sound cues for player transitions and plays them through beep.
package audio

import "github.com/lixenwraith/splat/parameter"

// SoundType identifies a cue
type SoundType int

const (
	SoundLaunch SoundType = iota
	SoundThrow
	SoundBounce
	SoundDeath
	SoundCheckpoint
	soundCount
)

var soundNames = [...]string{
	SoundLaunch:     "launch",
	SoundThrow:      "throw",
	SoundBounce:     "bounce",
	SoundDeath:      "death",
	SoundCheckpoint: "checkpoint",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundCount {
		return soundNames[s]
	}
	return "unknown"
}

// Config holds mixer settings
type Config struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns enabled audio at the compiled sample rate
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundLaunch:     0.5,
			SoundThrow:      0.4,
			SoundBounce:     0.7,
			SoundDeath:      0.8,
			SoundCheckpoint: 0.6,
		},
	}
}

func (c *Config) volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

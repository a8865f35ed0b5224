package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/splat/game"
	"github.com/lixenwraith/splat/parameter"
	"github.com/lixenwraith/splat/vmath"
)

var _ game.Events = (*Cues)(nil)

// Cues plays a sound for each player transition through a shared mixer
// Safe for concurrent use; every method is a no-op until Initialize succeeds
type Cues struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCues creates an uninitialized cue player
func NewCues(cfg *Config) *Cues {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Cues{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, disabled config leaves cues silent
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(c.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close stops playback and releases the speaker
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.mixer.Clear()
	c.initialized = false
}

// SetMuted silences new cues without closing the speaker
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// ToggleMute flips the mute flag and returns the new value
func (c *Cues) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// Play queues a cue on the mixer
func (c *Cues) Play(s SoundType, speed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}
	streamer := Effect(s, c.cfg, speed)
	if streamer == nil {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	c.mixer.Add(streamer)
	speaker.Unlock()
}

func (c *Cues) Launched(vmath.Vec)                 { c.Play(SoundLaunch, 0) }
func (c *Cues) Thrown(vmath.Vec)                   { c.Play(SoundThrow, 0) }
func (c *Cues) Bounced(_ vmath.Vec, speed float64) { c.Play(SoundBounce, speed) }
func (c *Cues) Died(vmath.Vec)                     { c.Play(SoundDeath, 0) }
func (c *Cues) Respawned(vmath.Vec)                {}
func (c *Cues) Checkpoint(vmath.Vec)               { c.Play(SoundCheckpoint, 0) }

// Package config loads physics and presentation tuning from a YAML file,
// layered over the compiled defaults in package parameter.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/splat/audio"
	"github.com/lixenwraith/splat/engine"
	"github.com/lixenwraith/splat/game"
	"github.com/lixenwraith/splat/parameter"
	"github.com/lixenwraith/splat/stage"
)

// EnvPath names the environment variable consulted when no path is given
const EnvPath = "SPLAT_CONFIG"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all tunable values
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Spring  SpringConfig  `yaml:"spring"`
	Chain   ChainConfig   `yaml:"chain"`
	Player  PlayerConfig  `yaml:"player"`
	Engine  EngineConfig  `yaml:"engine"`
	Camera  CameraConfig  `yaml:"camera"`
	Stage   StageConfig   `yaml:"stage"`
	Audio   AudioConfig   `yaml:"audio"`
}

type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	AirDrag   float64 `yaml:"air_drag"`
	SwingKick float64 `yaml:"swing_kick"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type SpringConfig struct {
	Kick     float64 `yaml:"kick"`
	MinSpeed float64 `yaml:"min_speed"`
}

type ChainConfig struct {
	LinkTime  time.Duration `yaml:"link_time"`
	MaxLength float64       `yaml:"max_length"`
}

type PlayerConfig struct {
	DeathFrameTime time.Duration `yaml:"death_frame_time"`
	DeathFrames    []string      `yaml:"death_frames"`
}

type EngineConfig struct {
	UpdateRate int `yaml:"update_rate"`
}

type CameraConfig struct {
	Follow    bool `yaml:"follow"`
	DeadZoneX int  `yaml:"dead_zone_x"`
	DeadZoneY int  `yaml:"dead_zone_y"`
}

type StageConfig struct {
	Seed          int64   `yaml:"seed"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	NoiseScale    float64 `yaml:"noise_scale"`
	CaveThreshold float64 `yaml:"cave_threshold"`
	FeatureChance float64 `yaml:"feature_chance"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns a Config populated from package parameter
func Default() *Config {
	frames := make([]string, len(parameter.DeathFrames))
	copy(frames, parameter.DeathFrames)

	return &Config{
		Physics: PhysicsConfig{
			Gravity:   parameter.Gravity,
			AirDrag:   parameter.AirDrag,
			SwingKick: parameter.SwingKick,
			JumpSpeed: parameter.JumpSpeed,
		},
		Spring: SpringConfig{
			Kick:     parameter.SpringKick,
			MinSpeed: parameter.MinSpringSpeed,
		},
		Chain: ChainConfig{
			LinkTime:  parameter.ChainLinkTime,
			MaxLength: parameter.ChainMaxLength,
		},
		Player: PlayerConfig{
			DeathFrameTime: parameter.DeathFrameTime,
			DeathFrames:    frames,
		},
		Engine: EngineConfig{
			UpdateRate: parameter.UpdateRate,
		},
		Camera: CameraConfig{
			Follow:    parameter.CameraEnabled,
			DeadZoneX: parameter.CameraDeadZoneMarginX,
			DeadZoneY: parameter.CameraDeadZoneMarginY,
		},
		Stage: StageConfig{
			Width:         parameter.StageWidth,
			Height:        parameter.StageHeight,
			NoiseScale:    parameter.StageNoiseScale,
			CaveThreshold: parameter.StageCaveThreshold,
			FeatureChance: parameter.StageFeatureChance,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioMasterVolume,
		},
	}
}

// Load reads path over the defaults
// An empty path falls back to $SPLAT_CONFIG; if that is empty too, defaults are returned
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML data onto cfg and validates the result
// Keys absent from data keep their current values
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return cfg.Validate()
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Engine.UpdateRate <= 0:
		return fmt.Errorf("%w: engine.update_rate must be positive, got %d", ErrInvalid, c.Engine.UpdateRate)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: physics.gravity must not be negative, got %g", ErrInvalid, c.Physics.Gravity)
	case c.Physics.AirDrag < 0:
		return fmt.Errorf("%w: physics.air_drag must not be negative, got %g", ErrInvalid, c.Physics.AirDrag)
	case c.Physics.JumpSpeed <= 0:
		return fmt.Errorf("%w: physics.jump_speed must be positive, got %g", ErrInvalid, c.Physics.JumpSpeed)
	case c.Physics.SwingKick < 0:
		return fmt.Errorf("%w: physics.swing_kick must not be negative, got %g", ErrInvalid, c.Physics.SwingKick)
	case c.Spring.Kick <= 1:
		return fmt.Errorf("%w: spring.kick must exceed 1, got %g", ErrInvalid, c.Spring.Kick)
	case c.Spring.MinSpeed < 0:
		return fmt.Errorf("%w: spring.min_speed must not be negative, got %g", ErrInvalid, c.Spring.MinSpeed)
	case c.Chain.LinkTime <= 0:
		return fmt.Errorf("%w: chain.link_time must be positive, got %v", ErrInvalid, c.Chain.LinkTime)
	case c.Chain.MaxLength <= 0:
		return fmt.Errorf("%w: chain.max_length must be positive, got %g", ErrInvalid, c.Chain.MaxLength)
	case c.Player.DeathFrameTime <= 0:
		return fmt.Errorf("%w: player.death_frame_time must be positive, got %v", ErrInvalid, c.Player.DeathFrameTime)
	case len(c.Player.DeathFrames) == 0:
		return fmt.Errorf("%w: player.death_frames must not be empty", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	case c.Stage.Width < 3 || c.Stage.Height < 3:
		return fmt.Errorf("%w: stage must be at least 3x3, got %dx%d", ErrInvalid, c.Stage.Width, c.Stage.Height)
	}
	return nil
}

// TickInterval returns the fixed simulation step
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Engine.UpdateRate)
}

// Tuning converts the physics sections into the player's tuning
func (c *Config) Tuning() game.Tuning {
	frames := make([]engine.Sprite, len(c.Player.DeathFrames))
	for i, f := range c.Player.DeathFrames {
		frames[i] = engine.SpriteFromStrings(f)
	}

	return game.Tuning{
		Gravity:        c.Physics.Gravity,
		AirDrag:        c.Physics.AirDrag,
		SwingKick:      c.Physics.SwingKick,
		JumpSpeed:      c.Physics.JumpSpeed,
		SpringKick:     c.Spring.Kick,
		MinSpringSpeed: c.Spring.MinSpeed,
		ChainLinkTime:  c.Chain.LinkTime,
		ChainMaxLength: c.Chain.MaxLength,
		DeathFrameTime: c.Player.DeathFrameTime,
		DeathFrames:    frames,
		Tick:           c.TickInterval(),
	}
}

// StageOptions returns the generator settings, seed overrides a zero config seed
func (c *Config) StageOptions(seed int64) stage.GenerateOptions {
	if seed == 0 {
		seed = c.Stage.Seed
	}
	return stage.GenerateOptions{
		Seed:          seed,
		Width:         c.Stage.Width,
		Height:        c.Stage.Height,
		NoiseScale:    c.Stage.NoiseScale,
		CaveThreshold: c.Stage.CaveThreshold,
		FeatureChance: c.Stage.FeatureChance,
	}
}

// AudioOptions returns the mixer settings
func (c *Config) AudioOptions() *audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = c.Audio.Volume
	return a
}

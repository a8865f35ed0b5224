package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/splat/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally gliding toward an end frequency
type oscillator struct {
	freq     float64
	glide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping linearly from one frequency to another
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	glide := 0.0
	if samples > 0 {
		glide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		glide:    glide,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.glide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateLaunchSound is a rising square chirp
func CreateLaunchSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewGlide(180, 520, parameter.LaunchSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.LaunchSoundDuration, parameter.LaunchSoundAttack, parameter.LaunchSoundRelease, rate)
	return newVolume(shaped, cfg.volume(SoundLaunch)*0.5)
}

// CreateThrowSound is a short noise zip
func CreateThrowSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ThrowSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ThrowSoundDuration, parameter.ThrowSoundAttack, parameter.ThrowSoundRelease, rate)
	return newVolume(shaped, cfg.volume(SoundThrow))
}

// CreateBounceSound is a sine boing whose pitch follows impact speed
func CreateBounceSound(cfg *Config, speed float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	freq := min(parameter.BounceSoundBaseFreq+speed*2, parameter.BounceSoundMaxFreq)
	osc := NewGlide(freq, freq*1.5, parameter.BounceSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)
	return newVolume(shaped, cfg.volume(SoundBounce))
}

// CreateDeathSound is a falling saw buzz
func CreateDeathSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewGlide(300, 60, parameter.DeathSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.DeathSoundDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)
	return newVolume(shaped, cfg.volume(SoundDeath)*0.6)
}

// CreateCheckpointSound is a two-note chime
func CreateCheckpointSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1, err := generators.SineTone(rate, 987.77)
	if err != nil {
		return nil
	}
	n1Shaped := NewEnvelope(beep.Take(rate.N(parameter.CheckpointSoundNote1Duration), n1),
		parameter.CheckpointSoundNote1Duration, parameter.CheckpointSoundAttack, parameter.CheckpointSoundNote1Release, rate)

	n2, err := generators.SineTone(rate, 1318.51)
	if err != nil {
		return nil
	}
	n2Shaped := NewEnvelope(beep.Take(rate.N(parameter.CheckpointSoundNote2Duration), n2),
		parameter.CheckpointSoundNote2Duration, parameter.CheckpointSoundAttack, parameter.CheckpointSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(SoundCheckpoint))
}

// Effect returns the streamer for a cue, nil for unknown types
// speed only shapes SoundBounce
func Effect(s SoundType, cfg *Config, speed float64) beep.Streamer {
	switch s {
	case SoundLaunch:
		return CreateLaunchSound(cfg)
	case SoundThrow:
		return CreateThrowSound(cfg)
	case SoundBounce:
		return CreateBounceSound(cfg, speed)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundCheckpoint:
		return CreateCheckpointSound(cfg)
	default:
		return nil
	}
}

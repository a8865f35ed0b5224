package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.6
)

// Launch Sound
const (
	LaunchSoundDuration = 90 * time.Millisecond
	LaunchSoundAttack   = 5 * time.Millisecond
	LaunchSoundRelease  = 60 * time.Millisecond
)

// Throw Sound
const (
	ThrowSoundDuration = 70 * time.Millisecond
	ThrowSoundAttack   = 2 * time.Millisecond
	ThrowSoundRelease  = 40 * time.Millisecond
)

// Bounce Sound
const (
	BounceSoundDuration = 120 * time.Millisecond
	BounceSoundAttack   = 3 * time.Millisecond
	BounceSoundRelease  = 80 * time.Millisecond

	// BounceSoundBaseFreq rises with impact speed, capped at BounceSoundMaxFreq
	BounceSoundBaseFreq = 220.0
	BounceSoundMaxFreq  = 880.0
)

// Death Sound
const (
	DeathSoundDuration = 400 * time.Millisecond
	DeathSoundAttack   = 5 * time.Millisecond
	DeathSoundRelease  = 300 * time.Millisecond
)

// Checkpoint Sound
const (
	CheckpointSoundNote1Duration = 80 * time.Millisecond
	CheckpointSoundNote2Duration = 240 * time.Millisecond
	CheckpointSoundAttack        = 5 * time.Millisecond
	CheckpointSoundNote1Release  = 20 * time.Millisecond
	CheckpointSoundNote2Release  = 200 * time.Millisecond
)

package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume (0.0-1.0)
	AudioMasterVolume = 0.6
)

// Shot Sound Timing
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
)

// Hit Sound Timing (enemy destroyed, boss hit)
const (
	HitSoundDuration = 90 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 70 * time.Millisecond
)

// Boss Down Sound Timing
const (
	BossDownNote1Duration = 120 * time.Millisecond
	BossDownNote2Duration = 320 * time.Millisecond
	BossDownAttack        = 5 * time.Millisecond
	BossDownNote1Release  = 60 * time.Millisecond
	BossDownNote2Release  = 250 * time.Millisecond
	BossDownGap           = 30 * time.Millisecond
)

// Hurt Sound Timing (formation instance lost)
const (
	HurtSoundDuration = 150 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 100 * time.Millisecond
)

// Pickup Sound Timing
const (
	PickupSoundDuration = 200 * time.Millisecond
	PickupSoundAttack   = 5 * time.Millisecond
	PickupSoundRelease  = 150 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 700 * time.Millisecond
)

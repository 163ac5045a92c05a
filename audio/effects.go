package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/road-fighter/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency glides linearly from start to end over its duration
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
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

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of fixed length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp at the start and a release ramp at the end
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) gain() float64 {
	if e.attackSamples > 0 && e.position < e.attackSamples {
		return float64(e.position) / float64(e.attackSamples)
	}
	remaining := e.totalSamples - e.position
	if e.releaseSamples > 0 && remaining < e.releaseSamples {
		return max(0, float64(remaining)/float64(e.releaseSamples))
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero volume is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// Sound effect generators

// CreateShotSound generates a short falling square chirp
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(1200, 500, constants.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundShot))
}

// CreateHitSound generates a noise crack over a low thump
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.HitSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	thump := NewEnvelope(NewSweep(220, 80, d, WaveSine, rate), d, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.5),
		newVolume(thump, 0.5),
	)
	return newVolume(mixed, effectVolume(cfg, SoundHit))
}

// CreateBossDownSound generates a two-note rising fanfare
func CreateBossDownSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E5)
	n1 := NewOscillator(659.25, constants.BossDownNote1Duration, WaveSaw, rate)
	n1Shaped := NewEnvelope(n1, constants.BossDownNote1Duration, constants.BossDownAttack, constants.BossDownNote1Release, rate)

	// Second note (A5)
	n2 := NewOscillator(880.0, constants.BossDownNote2Duration, WaveSaw, rate)
	n2Shaped := NewEnvelope(n2, constants.BossDownNote2Duration, constants.BossDownAttack, constants.BossDownNote2Release, rate)

	gap := generators.Silence(rate.N(constants.BossDownGap))

	return newVolume(beep.Seq(n1Shaped, gap, n2Shaped), effectVolume(cfg, SoundBossDown))
}

// CreateHurtSound generates a low descending buzz
func CreateHurtSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(160, 90, constants.HurtSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.HurtSoundDuration, constants.HurtSoundAttack, constants.HurtSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundHurt))
}

// CreatePickupSound generates a bright fifth chord
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.PickupSoundDuration

	root := NewEnvelope(NewOscillator(660, d, WaveSine, rate), d, constants.PickupSoundAttack, constants.PickupSoundRelease, rate)
	fifth := NewEnvelope(NewOscillator(990, d, WaveSine, rate), d, constants.PickupSoundAttack, constants.PickupSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(root, 0.6),
		newVolume(fifth, 0.4),
	)
	return newVolume(mixed, effectVolume(cfg, SoundPickup))
}

// CreateGameOverSound generates a long falling tone
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(440, 110, constants.GameOverSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundGameOver))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundBossDown:
		return CreateBossDownSound(cfg)
	case SoundHurt:
		return CreateHurtSound(cfg)
	case SoundPickup:
		return CreatePickupSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}

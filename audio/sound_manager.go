package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
)

// SoundManager plays procedural effects for simulation events
// All methods are safe to call before Initialize or after Cleanup; they become no-ops
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	output      *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager for cfg; nil selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		mixer:  mixer,
		output: &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(sm.output)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues one effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays the effect mapped to each event, at most once per sound type per call
// A burst of simultaneous hits in one frame sounds like one hit
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	for _, st := range SoundsFor(events) {
		sm.Play(st)
	}
}

// SoundsFor maps events to the distinct effects they trigger, in first-occurrence order
func SoundsFor(events []engine.Event) []SoundType {
	var seen [soundTypeCount]bool
	var out []SoundType
	for _, ev := range events {
		st, ok := soundForEvent(ev.Type)
		if !ok || seen[st] {
			continue
		}
		seen[st] = true
		out = append(out, st)
	}
	return out
}

func soundForEvent(t engine.EventType) (SoundType, bool) {
	switch t {
	case engine.EventShot:
		return SoundShot, true
	case engine.EventEnemyDestroyed, engine.EventBossHit:
		return SoundHit, true
	case engine.EventBossDestroyed:
		return SoundBossDown, true
	case engine.EventInstanceLost:
		return SoundHurt, true
	case engine.EventPowerupCollected:
		return SoundPickup, true
	case engine.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.output.Paused = sm.muted
		if sm.muted {
			sm.mixer.Clear()
		}
		speaker.Unlock()
	}
	return sm.muted
}

// SetMuted sets the mute state directly
func (sm *SoundManager) SetMuted(muted bool) {
	if sm.IsMuted() != muted {
		sm.ToggleMute()
	}
}

// IsMuted reports whether output is muted
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

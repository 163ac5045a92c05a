package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot     SoundType = iota // Formation fired
	SoundHit                       // Enemy destroyed or boss damaged
	SoundBossDown                  // Boss destroyed
	SoundHurt                      // Formation instance lost
	SoundPickup                    // Powerup collected
	SoundGameOver                  // Run ended
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:     "shot",
	SoundHit:      "hit",
	SoundBossDown: "boss_down",
	SoundHurt:     "hurt",
	SoundPickup:   "pickup",
	SoundGameOver: "game_over",
}

// String returns the config key of the sound
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)

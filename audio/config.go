package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/road-fighter/constants"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "ROAD_FIGHTER_AUDIO_ENABLED"
	EnvMasterVolume = "ROAD_FIGHTER_MASTER_VOLUME"
	EnvSFXVolumes   = "ROAD_FIGHTER_SFX_VOLUMES"
	EnvSampleRate   = "ROAD_FIGHTER_SAMPLE_RATE"
)

// AudioConfig holds output settings and per-effect volumes
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.AudioMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundShot:     0.35,
			SoundHit:      0.6,
			SoundBossDown: 0.8,
			SoundHurt:     0.8,
			SoundPickup:   0.7,
			SoundGameOver: 1.0,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(1, max(0, float64(val)/100.0))
		}
	}

	// Per-effect volumes as a JSON object keyed by sound name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok && v >= 0 {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

package audio

import (
	"testing"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if v, ok := cfg.EffectVolumes[st]; !ok || v <= 0 {
			t.Errorf("Expected positive default volume for %s", st)
		}
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "40")
	t.Setenv(EnvSFXVolumes, `{"shot": 0.1, "game_over": 0.5, "bogus": 3}`)
	t.Setenv(EnvSampleRate, "22050")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.4 {
		t.Errorf("Expected master volume 0.4, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundShot] != 0.1 || cfg.EffectVolumes[SoundGameOver] != 0.5 {
		t.Errorf("Unexpected effect volumes %v", cfg.EffectVolumes)
	}
	if cfg.EffectVolumes[SoundHit] != DefaultAudioConfig().EffectVolumes[SoundHit] {
		t.Error("Unlisted effects must keep their default")
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigClampsAndIgnoresInvalid(t *testing.T) {
	tests := []struct {
		name   string
		volume string
		rate   string
		wantV  float64
		wantSR int
	}{
		{"Volume above range", "250", "", 1.0, 44100},
		{"Volume below range", "-20", "", 0.0, 44100},
		{"Garbage volume", "loud", "", 0.6, 44100},
		{"Negative rate", "", "-5", 0.6, 44100},
		{"Garbage rate", "", "fast", 0.6, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvMasterVolume, tt.volume)
			t.Setenv(EnvSampleRate, tt.rate)
			t.Setenv(EnvAudioEnabled, "")
			t.Setenv(EnvSFXVolumes, "")

			cfg := LoadAudioConfig()
			if cfg.MasterVolume != tt.wantV {
				t.Errorf("Expected master volume %f, got %f", tt.wantV, cfg.MasterVolume)
			}
			if cfg.SampleRate != tt.wantSR {
				t.Errorf("Expected sample rate %d, got %d", tt.wantSR, cfg.SampleRate)
			}
		})
	}
}

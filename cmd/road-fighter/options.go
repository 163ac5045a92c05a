package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/road-fighter/engine"
)

// Environment defaults, usually supplied through .env
const (
	envConfig = "ROAD_FIGHTER_CONFIG"
	envSeed   = "ROAD_FIGHTER_SEED"
	envDebug  = "ROAD_FIGHTER_DEBUG"
)

// options holds the resolved command line
type options struct {
	configPath string
	seed       int64
	debug      bool
	mute       bool
	profile    string
}

// parseOptions reads flags from args, taking defaults from the environment
// Explicit flags override environment values
func parseOptions(args []string) (options, error) {
	var opts options

	envSeedVal, err := envInt64(envSeed)
	if err != nil {
		return opts, err
	}
	envDebugVal, err := envBool(envDebug)
	if err != nil {
		return opts, err
	}

	fs := flag.NewFlagSet("road-fighter", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", os.Getenv(envConfig), "TOML file overriding the default tuning")
	fs.Int64Var(&opts.seed, "seed", envSeedVal, "Random seed, 0 uses the config seed or the clock")
	fs.BoolVar(&opts.debug, "debug", envDebugVal, "Write a debug log to logs/road-fighter.log")
	fs.BoolVar(&opts.mute, "mute", false, "Start with sound muted")
	fs.StringVar(&opts.profile, "profile", "", "Profile mode: cpu or mem")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.profile {
	case "", "cpu", "mem":
	default:
		return opts, fmt.Errorf("unknown profile mode %q", opts.profile)
	}
	return opts, nil
}

func envInt64(key string) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// loadConfig returns the defaults, or the file at path layered over them
func loadConfig(path string) (engine.Config, error) {
	if path == "" {
		return engine.DefaultConfig(), nil
	}
	return engine.LoadConfig(path)
}

// resolveSeed picks the flag seed, then the config seed, then the clock
func resolveSeed(flagSeed, configSeed int64, now func() time.Time) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case configSeed != 0:
		return configSeed
	default:
		return now().UnixNano()
	}
}

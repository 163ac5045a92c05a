package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/profile"

	"github.com/lixenwraith/road-fighter/audio"
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/modes"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/render/renderers"
	"github.com/lixenwraith/road-fighter/systems"
)

func main() {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		log.Printf("Fatal: %v", err)
		fmt.Fprintf(os.Stderr, "road-fighter: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	switch opts.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	seed := resolveSeed(opts.seed, cfg.Seed, time.Now)
	log.Printf("Config loaded from %q, seed %d", opts.configPath, seed)

	sim := systems.NewSimulation(cfg, rand.New(rand.NewSource(seed)))

	// Audio failure is non-fatal, the game runs silent
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(opts.mute)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nROAD-FIGHTER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetStyle(render.BaseStyle)
	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()
	orchestrator := render.NewRenderOrchestrator(screen, width, height)
	renderers.RegisterAll(orchestrator)

	input := modes.NewInputHandler(sim, sound)

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	tooSmall := func() bool {
		return width < constants.MinTerminalWidth || height < constants.MinTerminalHeight
	}

	draw := func() {
		if tooSmall() {
			buf := orchestrator.Buffer()
			buf.Clear()
			buf.SetStringCentered(width/2, height/2, constants.TerminalTooSmallText, render.BaseStyle.Foreground(render.RgbOverlayText))
			buf.FlushToScreen(screen)
			screen.Show()
			return
		}
		ctx := render.NewRenderContext(sim.Snapshot(), cfg, width, height)
		ctx.Muted = sound.IsMuted()
		ctx.MenuSelection = input.MenuSelection()
		orchestrator.RenderFrame(ctx)
	}

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()
	pacer := engine.NewFramePacer(constants.FrameUpdateInterval, constants.MaxCatchUpFrames, time.Now())

	log.Printf("Run started, %d instances", sim.Instances())
	wasOver := false
	draw()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				width, height = resize.Size()
				orchestrator.Resize(width, height)
				log.Printf("Resized to %dx%d", width, height)
			}
			if !input.HandleEvent(ev) {
				log.Printf("Quit with score %d", sim.Score())
				return nil
			}

		case now := <-frameTicker.C:
			// The field is frozen while it cannot be shown
			if tooSmall() {
				pacer.Reset(now)
				draw()
				continue
			}

			if n := pacer.Due(now); n > 0 {
				result := sim.Tick(n)
				sound.HandleEvents(result.Events)

				if result.GameOver && !wasOver {
					log.Printf("Game over, score %d at frame %d", result.Score, sim.Snapshot().FrameCount)
				}
				wasOver = result.GameOver
			}
			draw()
		}
	}
}

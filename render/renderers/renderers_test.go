package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/components"
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/render"
)

const (
	testWidth  = 80
	testHeight = 31
)

// renderState draws one frame of gs through the full renderer stack onto a simulation screen
func renderState(t *testing.T, gs *engine.GameState, mutate func(*render.RenderContext)) *render.RenderBuffer {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(testWidth, testHeight)

	o := render.NewRenderOrchestrator(screen, testWidth, testHeight)
	RegisterAll(o)

	ctx := render.NewRenderContext(gs.Snapshot(), gs.Config, testWidth, testHeight)
	if mutate != nil {
		mutate(&ctx)
	}
	o.RenderFrame(ctx)
	return o.Buffer()
}

func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return sb.String()
}

func screenContains(buf *render.RenderBuffer, s string) bool {
	_, h := buf.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(buf, y), s) {
			return true
		}
	}
	return false
}

func background(buf *render.RenderBuffer, x, y int) tcell.Color {
	_, bg, _ := buf.Get(x, y).Style.Decompose()
	return bg
}

func TestRoadAndPlayerLayers(t *testing.T) {
	gs := engine.NewGameState(engine.DefaultConfig())
	buf := renderState(t, gs, nil)

	// Row 20 is game y 410, the road spans roughly columns 25-54 there
	if bg := background(buf, 40, 20); bg != render.RgbRoad {
		t.Errorf("Expected road at center of row 20, got %v", bg)
	}
	if bg := background(buf, 2, 20); bg != render.RgbBackground {
		t.Errorf("Expected off-road background at column 2, got %v", bg)
	}
	if bg := background(buf, 40, 2); bg == render.RgbRoad {
		t.Error("Expected no road above the horizon")
	}

	// Anchor (400, 520) maps to cell (40, 26)
	if bg := background(buf, 40, 26); bg != render.RgbPlayer {
		t.Errorf("Expected player at anchor cell, got %v", bg)
	}
}

func TestStatusBarShowsCounters(t *testing.T) {
	gs := engine.NewGameState(engine.DefaultConfig())
	gs.Score = 130
	gs.Instances = 6
	buf := renderState(t, gs, func(ctx *render.RenderContext) { ctx.Muted = true })

	bar := rowText(buf, testHeight-1)
	for _, want := range []string{"Score: 130", "Players: 6", "MUTED"} {
		if !strings.Contains(bar, want) {
			t.Errorf("Status bar %q missing %q", bar, want)
		}
	}
}

func TestBossHealthLabel(t *testing.T) {
	gs := engine.NewGameState(engine.DefaultConfig())
	gs.Bosses = []components.Boss{{NX: 0.5, Y: 300, Health: 42}}
	buf := renderState(t, gs, nil)

	if !screenContains(buf, "42") {
		t.Error("Expected boss health label")
	}
}

// TestPowerupLabelBlinks verifies the value is drawn only in the lit half of the cycle
func TestPowerupLabelBlinks(t *testing.T) {
	gs := engine.NewGameState(engine.DefaultConfig())
	gs.Powerups = []components.Powerup{{NX: 0.2, Y: 400, Value: 3, FlashPhase: 0}}
	if buf := renderState(t, gs, nil); !screenContains(buf, "+3") {
		t.Error("Expected visible powerup value")
	}

	gs.Powerups[0].FlashPhase = 12
	if buf := renderState(t, gs, nil); screenContains(buf, "+3") {
		t.Error("Expected hidden powerup value in dark half")
	}
}

func TestGameOverOverlay(t *testing.T) {
	gs := engine.NewGameState(engine.DefaultConfig())
	if buf := renderState(t, gs, nil); screenContains(buf, "GAME OVER") {
		t.Error("Overlay must be hidden while playing")
	}

	gs.Score = 70
	gs.Instances = 0
	gs.CheckGameOver()
	buf := renderState(t, gs, func(ctx *render.RenderContext) { ctx.MenuSelection = constants.MenuQuit })

	for _, want := range []string{"GAME OVER", "Final Score: 70", "Restart", "Quit"} {
		if !screenContains(buf, want) {
			t.Errorf("Overlay missing %q", want)
		}
	}

	// Selected entry carries the highlight background
	cy := (testHeight - 1) / 2
	quitRow := rowText(buf, cy+3)
	col := strings.Index(quitRow, "Quit")
	if col < 0 {
		t.Fatalf("Quit not on expected row: %q", quitRow)
	}
	if bg := background(buf, col, cy+3); bg != render.RgbMenuSelectedBg {
		t.Errorf("Expected highlighted Quit, got %v", bg)
	}
}

func TestProjectileGlyph(t *testing.T) {
	gs := engine.NewGameState(engine.DefaultConfig())
	gs.Projectiles = []components.Projectile{{X: 400, Y: 300, NX: 0.5}}
	buf := renderState(t, gs, nil)

	if r := buf.Get(40, 15).Rune; r != '|' {
		t.Errorf("Expected projectile glyph at (40, 15), got %q", r)
	}
}

package render

import (
	"math"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/vmath"
)

// RenderContext provides frame state for renderers, passed by value
// Game space (Config.Screen) is stretched onto the terminal rows above the status bar
type RenderContext struct {
	Snapshot   engine.Snapshot
	Config     engine.Config
	Projection vmath.Projection
	Geometry   engine.Geometry

	// Terminal dimensions
	Width  int
	Height int

	// Play field rows, terminal height minus the status bar
	FieldHeight int

	// Shell state
	Muted         bool
	MenuSelection int
}

// NewRenderContext creates a context for one frame
func NewRenderContext(snap engine.Snapshot, cfg engine.Config, width, height int) RenderContext {
	return RenderContext{
		Snapshot:    snap,
		Config:      cfg,
		Projection:  cfg.Projection(),
		Geometry:    engine.NewGeometry(cfg),
		Width:       width,
		Height:      height,
		FieldHeight: max(0, height-constants.StatusBarHeight),
	}
}

// CellX converts a game x to a terminal column
func (rc *RenderContext) CellX(x float64) int {
	return int(math.Floor(x * float64(rc.Width) / rc.Config.Screen.Width))
}

// CellY converts a game y to a terminal row
func (rc *RenderContext) CellY(y float64) int {
	return int(math.Floor(y * float64(rc.FieldHeight) / rc.Config.Screen.Height))
}

// GameY converts the center of a terminal row back to game y
func (rc *RenderContext) GameY(row int) float64 {
	if rc.FieldHeight == 0 {
		return 0
	}
	return (float64(row) + 0.5) * rc.Config.Screen.Height / float64(rc.FieldHeight)
}

// CellRect converts a game box to the inclusive range of cells it touches, at least one cell in each axis
func (rc *RenderContext) CellRect(r vmath.Rect) (x0, y0, x1, y1 int) {
	sx := float64(rc.Width) / rc.Config.Screen.Width
	sy := float64(rc.FieldHeight) / rc.Config.Screen.Height

	x0, y0 = rc.CellX(r.X), rc.CellY(r.Y)
	x1 = int(math.Ceil(r.Right()*sx)) - 1
	y1 = int(math.Ceil(r.Bottom()*sy)) - 1
	return x0, y0, max(x0, x1), max(y0, y1)
}

// FieldRow reports whether row lies inside the play field
func (rc *RenderContext) FieldRow(row int) bool {
	return row >= 0 && row < rc.FieldHeight
}

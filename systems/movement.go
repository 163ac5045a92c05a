package systems

import (
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/vmath"
)

// speedScale is the approach speed multiplier, 1 at the horizon rising to 2 at the viewer
func speedScale(p vmath.Projection, y float64) float64 {
	return 1 + p.Depth(y)
}

// homeLane steers a lane position toward the formation anchor at depth y
// The step is the screen distance to the anchor as a fraction of the road width, times gain
func homeLane(gs *engine.GameState, nx, y, gain float64) float64 {
	p := gs.Projection
	w := p.LaneWidth(y)
	if w == 0 {
		return nx
	}
	dx := gs.PlayerX - p.ScreenX(nx, y)
	return vmath.Clamp(nx+dx/w*gain, 0, 1)
}

package vmath

// Projection maps lane space (nx, depth) to screen space
// Value type, immutable after construction; every call site shares the same formulas
type Projection struct {
	ScreenWidth     float64
	ScreenHeight    float64
	HorizonY        float64
	RoadWidthBottom float64
	RoadWidthTop    float64
	MinScale        float64
	MaxScale        float64
}

// Depth returns the unclamped distance fraction of y between horizon (0) and viewer (1)
func (p Projection) Depth(y float64) float64 {
	return (y - p.HorizonY) / (p.ScreenHeight - p.HorizonY)
}

// Scale returns the perspective size multiplier at depth y, clamped to [MinScale, MaxScale]
func (p Projection) Scale(y float64) float64 {
	return Clamp(p.Depth(y), p.MinScale, p.MaxScale)
}

// LaneWidth returns the road width at depth y
// Wide at the bottom of the screen, narrow at the horizon
func (p Projection) LaneWidth(y float64) float64 {
	return p.RoadWidthBottom - (p.RoadWidthBottom-p.RoadWidthTop)*((p.ScreenHeight-y)/(p.ScreenHeight-p.HorizonY))
}

// RoadLeft returns the screen x of the road's left edge at depth y
func (p Projection) RoadLeft(y float64) float64 {
	return (p.ScreenWidth - p.LaneWidth(y)) / 2
}

// RoadRight returns the screen x of the road's right edge at depth y
func (p Projection) RoadRight(y float64) float64 {
	return p.RoadLeft(y) + p.LaneWidth(y)
}

// ScreenX converts a lane position to screen x at depth y
func (p Projection) ScreenX(nx, y float64) float64 {
	return p.RoadLeft(y) + nx*p.LaneWidth(y)
}

// LaneX is the inverse of ScreenX at depth y
// Result is not clamped; positions off the road map outside [0, 1]
func (p Projection) LaneX(x, y float64) float64 {
	w := p.LaneWidth(y)
	if w == 0 {
		return 0
	}
	return (x - p.RoadLeft(y)) / w
}

// @focus: #constants { road }
package constants

// Logical screen, in game units. Terminal output is scaled from this space
const (
	// ScreenWidth is the logical width of the play field
	ScreenWidth = 800

	// ScreenHeight is the logical height; depth values equal to it are at the viewer
	ScreenHeight = 600

	// HorizonY is the depth of the vanishing line where the road is narrowest
	HorizonY = 100
)

// Road geometry
const (
	// RoadWidthBottom is the road width at ScreenHeight
	RoadWidthBottom = ScreenWidth / 2

	// RoadWidthTop is the road width at HorizonY
	RoadWidthTop = RoadWidthBottom / 3

	// BarrierWidth is the width of the side barrier at the bottom of the screen
	BarrierWidth = 10
)

// Perspective scale bounds
const (
	// MinScale is the size multiplier at and above the horizon
	MinScale = 0.4

	// MaxScale is the size multiplier at the bottom of the screen
	MaxScale = 1.0
)

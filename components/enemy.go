// @focus: #entities { enemy }
package components

// Enemy is a regular foe advancing toward the player along a lane
type Enemy struct {
	NX   float64 // Lane position, clamped to [0, 1]
	Y    float64 // Depth, increases every tick
	Dead bool    // Tombstone, swept at end of tick
}

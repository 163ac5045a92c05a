// Package formation computes the elliptical ring layout of the player's instances
package formation

import (
	"math"

	"github.com/lixenwraith/road-fighter/constants"
)

// Offset is an instance position relative to the formation anchor
type Offset struct {
	DX, DY float64
}

// Layout returns exactly count offsets arranged on concentric flattened rings
// Ring count is ceil(sqrt(count)); inner rings are filled to their circumference capacity
// and the outermost ring takes whatever remains. A non-positive instanceWidth makes every
// ring's capacity unbounded
func Layout(count int, radius, instanceWidth float64) []Offset {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []Offset{{}}
	}

	offsets := make([]Offset, 0, count)
	rings := int(math.Ceil(math.Sqrt(float64(count))))
	remaining := count

	for r := 0; r < rings && remaining > 0; r++ {
		ringRadius := radius * float64(r+1) / float64(rings)

		var onRing int
		if r == rings-1 {
			onRing = remaining
		} else {
			onRing = ringCapacity(ringRadius, instanceWidth, remaining)
		}
		if onRing <= 0 {
			continue
		}

		step := 2 * math.Pi / float64(onRing)
		for i := 0; i < onRing; i++ {
			angle := float64(i) * step
			offsets = append(offsets, Offset{
				DX: ringRadius * math.Cos(angle),
				DY: ringRadius * math.Sin(angle) * constants.FormationFlatten,
			})
		}
		remaining -= onRing
	}

	return offsets
}

// ringCapacity returns how many instances fit around a ring, capped by remaining
func ringCapacity(ringRadius, instanceWidth float64, remaining int) int {
	if instanceWidth <= 0 {
		return remaining
	}
	circumference := 2 * math.Pi * ringRadius
	capacity := int(math.Floor(circumference / (constants.FormationRingSpacing * instanceWidth)))
	return min(capacity, remaining)
}

package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/road-fighter/engine"
)

// newTestSimulation builds the full pipeline with a fixed seed
// The first 59 ticks never spawn, so fixtures placed by hand are the only entities
func newTestSimulation(t *testing.T) (*engine.Simulation, *engine.GameState) {
	t.Helper()
	sim := NewSimulation(engine.DefaultConfig(), rand.New(rand.NewSource(1)))
	return sim, sim.State()
}

func hasEvent(events []engine.Event, et engine.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == et {
			n++
		}
	}
	return n
}

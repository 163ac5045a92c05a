// Package modes translates terminal key events into simulation commands
package modes

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
)

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
}

// InputHandler processes user input events
// While playing keys steer and fire; after game over they drive the restart/quit menu
type InputHandler struct {
	sim       *engine.Simulation
	sound     Muter
	selection int
}

// NewInputHandler creates a new input handler; sound may be nil
func NewInputHandler(sim *engine.Simulation, sound Muter) *InputHandler {
	return &InputHandler{
		sim:   sim,
		sound: sound,
	}
}

// MenuSelection returns the highlighted game over menu entry
func (h *InputHandler) MenuSelection() int {
	return h.selection
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	// Exit keys work in every phase
	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return false
	}

	if key.Key() == tcell.KeyRune && key.Rune() == 'm' {
		if h.sound != nil {
			muted := h.sound.ToggleMute()
			log.Printf("Sound muted: %v", muted)
		}
		return true
	}

	if h.sim.IsGameOver() {
		return h.handleMenu(key)
	}
	return h.handlePlaying(key)
}

// handlePlaying handles steering and firing
func (h *InputHandler) handlePlaying(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		h.sim.MovePlayer(engine.DirLeft)
	case tcell.KeyRight:
		h.sim.MovePlayer(engine.DirRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			h.sim.Fire()
		case 'h', 'a':
			h.sim.MovePlayer(engine.DirLeft)
		case 'l', 'd':
			h.sim.MovePlayer(engine.DirRight)
		case 'q':
			return false
		}
	}
	return true
}

// handleMenu handles the game over menu
func (h *InputHandler) handleMenu(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		h.moveSelection(-1)
	case tcell.KeyDown, tcell.KeyTab:
		h.moveSelection(1)
	case tcell.KeyEnter:
		return h.activate()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			h.moveSelection(-1)
		case 'j':
			h.moveSelection(1)
		case 'r':
			h.selection = constants.MenuRestart
			return h.activate()
		case 'q':
			return false
		}
	}
	return true
}

// moveSelection wraps around the menu entries
func (h *InputHandler) moveSelection(delta int) {
	h.selection = (h.selection + delta + constants.MenuEntryCount) % constants.MenuEntryCount
}

// activate runs the selected menu entry and returns false on quit
func (h *InputHandler) activate() bool {
	if h.selection == constants.MenuQuit {
		return false
	}
	log.Printf("Restart after game over, final score %d", h.sim.Score())
	h.sim.Restart()
	h.selection = constants.MenuRestart
	return true
}

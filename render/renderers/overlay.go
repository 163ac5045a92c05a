package renderers

import (
	"strconv"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
)

// GameOverRenderer draws the final score and the restart/quit menu over the frozen field
type GameOverRenderer struct{}

// NewGameOverRenderer creates a game over overlay renderer
func NewGameOverRenderer() *GameOverRenderer {
	return &GameOverRenderer{}
}

// IsVisible returns true once the run has ended
func (r *GameOverRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.GameOver
}

// Render implements SystemRenderer
func (r *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cx := ctx.Width / 2
	cy := ctx.FieldHeight / 2

	// Dim panel behind the text
	panelHalf := max(len(constants.GameOverScoreText)+6, 12)
	panel := render.BaseStyle.Background(render.RgbOverlayBg)
	buf.FillRect(cx-panelHalf, cy-3, cx+panelHalf, cy+4, ' ', panel)

	buf.SetStringCentered(cx, cy-2, constants.GameOverTitle, panel.Foreground(render.RgbOverlayTitle).Bold(true))
	buf.SetStringCentered(cx, cy, constants.GameOverScoreText+strconv.Itoa(ctx.Snapshot.Score), panel.Foreground(render.RgbOverlayText))

	entries := []string{constants.MenuRestart: constants.MenuRestartText, constants.MenuQuit: constants.MenuQuitText}
	for i, text := range entries {
		style := panel.Foreground(render.RgbMenuIdle)
		if i == ctx.MenuSelection {
			style = panel.Foreground(render.RgbMenuSelected).Background(render.RgbMenuSelectedBg)
		}
		buf.SetStringCentered(cx, cy+2+i, text, style)
	}
}

package renderers

import (
	"strconv"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
)

// StatusBarRenderer draws score, formation size and the mute flag below the play field
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.FieldHeight
	if y >= ctx.Height {
		return
	}
	style := render.BaseStyle.Foreground(render.RgbStatusBar).Background(render.RgbStatusBarBg)

	// Clear status bar
	buf.FillRect(0, y, ctx.Width-1, y, ' ', style)

	x := 1
	x += buf.SetString(x, y, constants.HUDScoreText+strconv.Itoa(ctx.Snapshot.Score), style)
	x += 3
	buf.SetString(x, y, constants.HUDPlayersText+strconv.Itoa(ctx.Snapshot.Instances), style)

	if ctx.Muted {
		mutedStyle := style.Foreground(render.RgbStatusBar).Background(render.RgbAudioMuted)
		buf.SetString(ctx.Width-len(constants.HUDMutedText), y, constants.HUDMutedText, mutedStyle)
	}
}

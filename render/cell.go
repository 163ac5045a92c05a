package render

import "github.com/gdamore/tcell/v2"

// Cell is a single composed terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

var emptyCell = Cell{Rune: ' ', Style: BaseStyle}

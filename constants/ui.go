package constants

// HUD Layout
const (
	// StatusBarHeight is the number of terminal rows reserved below the play field
	StatusBarHeight = 1

	// HUDScoreText and HUDPlayersText prefix the status bar values
	HUDScoreText   = "Score: "
	HUDPlayersText = "Players: "

	// HUDMutedText is shown when audio is muted
	HUDMutedText = " MUTED "
)

// Game Over Overlay
const (
	GameOverTitle     = "GAME OVER"
	GameOverScoreText = "Final Score: "
	MenuRestartText   = "Restart"
	MenuQuitText      = "Quit"
)

// Game over menu entries, in display order
const (
	MenuRestart = iota
	MenuQuit
	MenuEntryCount
)

// Glyphs
const (
	ProjectileChar = '|'
	ShadowChar     = '▀'
	FillChar       = ' '
)

// Minimum terminal size for a playable view
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 15

	TerminalTooSmallText = "Terminal too small"
)

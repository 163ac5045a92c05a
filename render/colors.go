package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the play field
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Night sky and off-road
	RgbRoad       = tcell.NewRGBColor(128, 128, 128) // Asphalt gray
	RgbBarrier    = tcell.NewRGBColor(64, 64, 64)    // Dark gray side barriers
	RgbShadow     = tcell.NewRGBColor(64, 64, 64)    // Player shadow
	RgbHorizon    = tcell.NewRGBColor(90, 90, 110)   // Vanishing line

	RgbPlayer     = tcell.NewRGBColor(255, 0, 0)     // Formation instances
	RgbEnemy      = tcell.NewRGBColor(255, 255, 255) // Regular enemies
	RgbBoss       = tcell.NewRGBColor(255, 0, 0)     // Boss body
	RgbBossHealth = tcell.NewRGBColor(255, 255, 255) // Health number on boss
	RgbProjectile = tcell.NewRGBColor(255, 255, 255) // Projectiles

	RgbPowerup     = tcell.NewRGBColor(200, 200, 0) // Pickup box
	RgbPowerupText = tcell.NewRGBColor(0, 0, 0)     // Value label

	// Status bar and overlay
	RgbStatusBar      = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBarBg    = tcell.NewRGBColor(26, 27, 38)
	RgbAudioMuted     = tcell.NewRGBColor(255, 0, 0)
	RgbOverlayBg      = tcell.NewRGBColor(20, 20, 20)
	RgbOverlayTitle   = tcell.NewRGBColor(255, 0, 0)
	RgbOverlayText    = tcell.NewRGBColor(255, 255, 255)
	RgbMenuSelected   = tcell.NewRGBColor(255, 255, 255)
	RgbMenuIdle       = tcell.NewRGBColor(128, 128, 128)
	RgbMenuSelectedBg = tcell.NewRGBColor(60, 60, 0)
)

// BaseStyle is the style every frame is cleared to
var BaseStyle = tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbBackground)

// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600 // 100×85 ft half rink at 6 px/ft
	ScreenHeight = 510
	TPS          = 20 // matches sim.TimePerFrame
	MaxDeltaTime = 0.25
	StrokeWidth  = 2.0

	PollTimeoutMS  = 2
	RecordEvery    = 1
	PprofAddr      = "localhost:6060"
	WindowTitle    = "simcanvas"
	PauseLabel     = "PAUSED"
	PauseFontSize  = 40
	StatusFontSize = 10
	HUDButtonSize  = 8.0
	HUDOffset      = 20
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	LiveColor       = color.RGBA{50, 205, 50, 255}
	PausedColor     = color.RGBA{255, 215, 0, 255}
	EndedColor      = color.RGBA{128, 128, 128, 255}
)

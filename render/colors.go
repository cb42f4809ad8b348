package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground    = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbText          = tcell.NewRGBColor(255, 255, 255) // White
	RgbHighlight     = tcell.NewRGBColor(255, 255, 0)   // Yellow for selected menu option
	RgbTitle         = tcell.NewRGBColor(0, 200, 200)   // Cyan
	RgbPlayer        = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbEnemyHealthy  = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbEnemyHurt     = tcell.NewRGBColor(180, 50, 50)   // Dark Red
	RgbEnemyCritical = tcell.NewRGBColor(100, 30, 30)   // Very dark red
	RgbStatusBar     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// Base styles
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StyleText       = StyleBackground.Foreground(RgbText)
	StyleHighlight  = StyleBackground.Foreground(RgbHighlight).Bold(true)
	StyleTitle      = StyleBackground.Foreground(RgbTitle).Bold(true)
	StylePlayer     = StyleBackground.Foreground(RgbPlayer)
	StyleStatusBar  = StyleBackground.Foreground(RgbStatusBar)
)

// EnemyStyle returns the enemy style for a health ratio in [0, 1]
// Ratios outside the range are clamped
func EnemyStyle(ratio float64) tcell.Style {
	switch {
	case ratio > 0.66:
		return StyleBackground.Foreground(RgbEnemyHealthy)
	case ratio > 0.33:
		return StyleBackground.Foreground(RgbEnemyHurt)
	default:
		return StyleBackground.Foreground(RgbEnemyCritical)
	}
}

package constants

// Menu options in display order
var MenuOptions = []string{"Start Game", "Options", "Quit"}

// UI Layout
const (
	// MenuTitle is drawn above the options
	MenuTitle = "VI-ARENA"

	// MenuRowSpacing is the number of rows between menu options
	MenuRowSpacing = 2

	// HUDRow is the screen row the play scene draws its status line on
	HUDRow = 0
)

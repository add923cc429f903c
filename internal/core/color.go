package core

// Color is the foreground color of a screen cell in the form lipgloss.Color
// accepts: an ANSI index such as "2" or a "#rrggbb" hex value. The terminal
// host downsamples hex colors to whatever the terminal supports.
type Color string

// Fixed colors for game elements without a sprite tint.
const (
	ColorDefault      Color = "" // Terminal's own foreground
	ColorGreen        Color = "2"
	ColorBrightYellow Color = "11"
	ColorBrightWhite  Color = "15"
)

package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
}

// ParseColor looks up a color by its config name (e.g. "bright_red").
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// RGB returns an sRGB approximation used by pixel renderers.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 170, 0, 0
	case ColorGreen:
		return 0, 170, 0
	case ColorYellow:
		return 170, 170, 0
	case ColorBlue:
		return 0, 0, 170
	case ColorMagenta:
		return 170, 0, 170
	case ColorCyan:
		return 0, 170, 170
	case ColorWhite:
		return 200, 200, 200
	case ColorBrightRed:
		return 255, 85, 85
	case ColorBrightGreen:
		return 85, 255, 85
	case ColorBrightYellow:
		return 255, 255, 85
	case ColorBrightBlue:
		return 85, 85, 255
	case ColorBrightMagenta:
		return 255, 85, 255
	case ColorBrightCyan:
		return 85, 255, 255
	case ColorBrightWhite:
		return 255, 255, 255
	case ColorOrange:
		return 255, 135, 0
	case ColorGray:
		return 138, 138, 138
	default:
		return 20, 20, 30
	}
}

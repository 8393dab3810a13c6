package core

import "strings"

// Color is a foreground colour for a screen cell, mapped to ANSI codes by
// the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"bright":  ColorBrightWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// ColorByName looks up a colour by its lowercase name.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(name)]
	return c, ok
}

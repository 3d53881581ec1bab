package richtext

import "strings"

// Color is the closed set of text colors understood by the annotation model.
// Foreground and background colors are mutually exclusive within a single
// run; a background value always describes the run's highlight, never its
// glyph color.
type Color string

const (
	ColorDefault Color = "default"

	ColorGray   Color = "gray"
	ColorBrown  Color = "brown"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
	ColorRed    Color = "red"
	ColorWhite  Color = "white"

	ColorGrayBackground   Color = "gray_background"
	ColorBrownBackground  Color = "brown_background"
	ColorOrangeBackground Color = "orange_background"
	ColorYellowBackground Color = "yellow_background"
	ColorGreenBackground  Color = "green_background"
	ColorBlueBackground   Color = "blue_background"
	ColorPurpleBackground Color = "purple_background"
	ColorPinkBackground   Color = "pink_background"
	ColorRedBackground    Color = "red_background"
	ColorWhiteBackground  Color = "white_background"
)

// CodeAccentColor is assigned to inline-code runs that carry no explicit
// color, so that exports render code spans consistently.
const CodeAccentColor = ColorRed

var validColors = map[Color]struct{}{
	ColorDefault:          {},
	ColorGray:             {},
	ColorBrown:            {},
	ColorOrange:           {},
	ColorYellow:           {},
	ColorGreen:            {},
	ColorBlue:             {},
	ColorPurple:           {},
	ColorPink:             {},
	ColorRed:              {},
	ColorWhite:            {},
	ColorGrayBackground:   {},
	ColorBrownBackground:  {},
	ColorOrangeBackground: {},
	ColorYellowBackground: {},
	ColorGreenBackground:  {},
	ColorBlueBackground:   {},
	ColorPurpleBackground: {},
	ColorPinkBackground:   {},
	ColorRedBackground:    {},
	ColorWhiteBackground:  {},
}

func (c Color) Valid() bool {
	_, ok := validColors[c]
	return ok
}

func (c Color) IsBackground() bool {
	return strings.HasSuffix(string(c), "_background")
}

// Normalized maps unknown color values to the default color.
func (c Color) Normalized() Color {
	if c == "" || !c.Valid() {
		return ColorDefault
	}
	return c
}

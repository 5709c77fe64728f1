package core

// Color is a foreground color for a screen cell. The zero value keeps the
// terminal's own foreground.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// palette holds the name and ANSI 256-color index of every color.
var palette = [colorCount]struct {
	name string
	ansi string
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright-red", "9"},
	ColorBrightGreen:   {"bright-green", "10"},
	ColorBrightYellow:  {"bright-yellow", "11"},
	ColorBrightBlue:    {"bright-blue", "12"},
	ColorBrightMagenta: {"bright-magenta", "13"},
	ColorBrightCyan:    {"bright-cyan", "14"},
	ColorBrightWhite:   {"bright-white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
}

// ANSI returns the 256-color palette index, or "" for the default color
// and unknown values.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return palette[c].ansi
}

func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return palette[c].name
}

// Colors lists every defined color, the default first.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

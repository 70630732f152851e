package core

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
	ColorGray
)

// Attr is a bit set of text attributes applied on top of a color.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1
)

// Has reports whether all bits of a are set.
func (at Attr) Has(a Attr) bool {
	return at&a == a
}

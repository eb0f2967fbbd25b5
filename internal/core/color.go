package core

// Color is a foreground color for a screen cell. The platform maps it to a
// terminal palette entry.
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
)

// RowPalette colors brick rows top to bottom; it wraps for taller fields.
var RowPalette = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// RowColor returns the palette entry for brick row i.
func RowColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return RowPalette[i%len(RowPalette)]
}

package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette available to games.
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
	ColorOrange
	ColorGray
)

// GaugeColor picks a traffic-light color for a meter reading value out of
// maxValue. With highIsBad set (suspicion) the scale runs the other way.
func GaugeColor(value, maxValue int, highIsBad bool) Color {
	if maxValue <= 0 {
		return ColorGray
	}
	pct := Clamp(value, 0, maxValue) * 100 / maxValue
	if highIsBad {
		pct = 100 - pct
	}
	switch {
	case pct >= 60:
		return ColorGreen
	case pct >= 30:
		return ColorYellow
	default:
		return ColorRed
	}
}

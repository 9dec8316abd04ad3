package core

import "strings"

// Cell is one character position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is the character buffer games draw into. The platform turns it into
// terminal output; games never touch the terminal themselves.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen returns a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.cells = make([]Cell, width*height)
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the size and keeps whatever still fits at the top left.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	old := *s
	*s = *NewScreen(width, height)
	for y := 0; y < min(old.height, height); y++ {
		copy(s.cells[y*width:y*width+min(old.width, width)], old.cells[y*old.width:])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Set writes r in the default color. Writes off the screen are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColor(x, y, r, ColorDefault)
}

// SetColor writes a colored rune. Writes off the screen are dropped.
func (s *Screen) SetColor(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank one off the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text from (x, y) rightwards, clipped at the edge.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColor(x, y, text, ColorDefault)
}

// DrawTextColor is DrawText in color c. Each rune takes one cell.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColor(x+i, y, r, c)
	}
}

func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColor(y, text, ColorDefault)
}

func (s *Screen) DrawTextCenteredColor(y int, text string, c Color) {
	s.DrawTextColor((s.width-len([]rune(text)))/2, y, text, c)
}

// DrawRect fills the panel with r.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		s.DrawHLine(r.X, y, r.W, fill)
	}
}

// DrawBoxColor outlines the panel with box-drawing runes.
func (s *Screen) DrawBoxColor(r Rect, c Color) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetColor(x, r.Y, '─', c)
		s.SetColor(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColor(r.X, y, '│', c)
		s.SetColor(right, y, '│', c)
	}
	s.SetColor(r.X, r.Y, '┌', c)
	s.SetColor(right, r.Y, '┐', c)
	s.SetColor(r.X, bottom, '└', c)
	s.SetColor(right, bottom, '┘', c)
}

// DrawHLine repeats r for length cells from (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawBar draws a meter width cells wide, filled to value/maxValue in c and
// dimmed for the rest.
func (s *Screen) DrawBar(x, y, width, value, maxValue int, c Color) {
	if width <= 0 || maxValue <= 0 {
		return
	}
	filled := Clamp(value, 0, maxValue) * width / maxValue
	for i := 0; i < width; i++ {
		if i < filled {
			s.SetColor(x+i, y, '█', c)
		} else {
			s.SetColor(x+i, y, '░', ColorGray)
		}
	}
}

// Row returns row y as plain text; rows off the screen are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y*s.width : (y+1)*s.width] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// String is the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

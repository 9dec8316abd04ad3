// Package core provides the platform primitives shared by every game: runtime
// configuration, input frames, and a colored character screen. It has no
// Bubble Tea dependency so game logic stays pure and testable.
package core

import "cmp"

// Rect is a panel on the screen. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the panel at (x, y) with the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the panel.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row below the panel.
func (r Rect) Bottom() int { return r.Y + r.H }

// Inset shrinks the panel by n on every side. The size never goes negative.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(0, r.W-2*n),
		H: max(0, r.H-2*n),
	}
}

// Clamp pins v into [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Package core provides the platform types shared by games and terminal hosts.
// It has no terminal dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned area of the screen, in cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenteredIn returns a w x h rectangle centered inside outer. When outer is
// smaller, the result starts at a negative offset and drawing clips it.
func CenteredIn(outer Rect, w, h int) Rect {
	return NewRect(outer.X+(outer.W-w)/2, outer.Y+(outer.H-h)/2, w, h)
}

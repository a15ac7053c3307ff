package geometry

import "fmt"

// Rt is a convenience constructor for Rect
func Rt(x, y, width, height int) Rect {
	return Rect{Pos: Pt(x, y), Size: Sz(width, height)}
}

// Rect is a sub-region of a grid: a top-left corner plus a size
type Rect struct {
	Pos  Point
	Size Size
}

// X returns the left coordinate of the rectangle
func (r Rect) X() int { return r.Pos.X }

// Y returns the top coordinate of the rectangle
func (r Rect) Y() int { return r.Pos.Y }

// Width returns the rectangle width in cells
func (r Rect) Width() int { return r.Size.Width }

// Height returns the rectangle height in cells
func (r Rect) Height() int { return r.Size.Height }

// String formats the rectangle in X11 geometry form "WxH+X+Y"
func (r Rect) String() string {
	return fmt.Sprintf("%s+%d+%d", r.Size, r.Pos.X, r.Pos.Y)
}

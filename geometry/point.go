// Package geometry provides the value types used to address cells in a
// bitmap: Point (a coordinate pair), Size (width/height dimensions) and
// Rect (a positioned sub-region). All three are plain value types with
// no identity beyond their components.
package geometry

import "fmt"

// Pt is a convenience constructor for Point
func Pt(x, y int) Point { return Point{x, y} }

// Point is a 2D coordinate identifying a single cell
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points
func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y
	return p
}

// Equal reports whether both components match another point's
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// String formats the point as "(x, y)"
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

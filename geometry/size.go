package geometry

import (
	"math"
	"strconv"
)

// Sz is a convenience constructor for Size
func Sz(width, height int) Size { return Size{width, height} }

// Size describes grid dimensions in cells
type Size struct {
	Width, Height int
}

// PointCount returns the number of cells a grid of this size holds
func (s Size) PointCount() int {
	return s.Width * s.Height
}

// IsValid reports whether the size can describe a grid: both dimensions
// non-negative and Width*Height representable in an int. Zero-area
// sizes are valid, they describe an empty grid.
func (s Size) IsValid() bool {
	if s.Width < 0 || s.Height < 0 {
		return false
	}
	if s.Height != 0 && s.Width > math.MaxInt/s.Height {
		return false
	}
	return true
}

// Empty reports whether the size describes a grid with no cells
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

// String formats the size as "WxH"
func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

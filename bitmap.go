// Package bitmap provides a generic, owning, row-major 2D grid
// container for image-like cell buffers.
//
// A Bitmap[T] owns a contiguous []T of exactly Width*Height elements;
// the cell at (x, y) lives at linear offset y*Width + x. Constructors
// and Resize validate the requested size and fail with ErrInvalidSize
// rather than clamping. Element access comes in a checked flavour (At,
// which fails with ErrOutOfRange) and an unchecked fast path
// (AtUnchecked, Offset combined with Data) that performs no validation
// at all; misuse of the fast path is a caller bug, not a reported
// error.
//
// Sub extracts a rectangular sub-region as a fully independent Bitmap,
// clipping at the source's right and bottom edges and padding the
// remainder with a fill value instead of failing.
//
// Bitmap is a single-threaded value type: concurrent writes, or any
// write concurrent with Resize or Sub, require external locking.
package bitmap

import (
	"fmt"

	"github.com/lixenwraith/bitmap/geometry"
)

// Bitmap is an owning rectangular buffer of T values in row-major
// order. The zero value is a usable empty bitmap.
type Bitmap[T any] struct {
	size geometry.Size
	data []T
}

// New creates a bitmap of the given size with every cell set to fill.
// Fails with ErrInvalidSize if the size is not representable.
func New[T any](size geometry.Size, fill T) (*Bitmap[T], error) {
	if !size.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	b := &Bitmap[T]{
		size: size,
		data: make([]T, size.PointCount()),
	}
	b.Fill(fill)
	return b, nil
}

// NewWH creates a width x height bitmap with every cell set to fill
func NewWH[T any](width, height int, fill T) (*Bitmap[T], error) {
	return New(geometry.Sz(width, height), fill)
}

// FromSlice creates a bitmap of the given size initialized by copying
// values in row-major order. Fails with ErrInvalidSize on an invalid
// size and with ErrShapeMismatch when len(values) differs from the
// size's point count.
func FromSlice[T any](size geometry.Size, values []T) (*Bitmap[T], error) {
	if !size.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	if len(values) != size.PointCount() {
		return nil, fmt.Errorf("%w: size %s holds %d points, got %d values",
			ErrShapeMismatch, size, size.PointCount(), len(values))
	}
	data := make([]T, len(values))
	copy(data, values)
	return &Bitmap[T]{size: size, data: data}, nil
}

// Clone returns a deep copy with fully independent storage
func (b *Bitmap[T]) Clone() *Bitmap[T] {
	out := &Bitmap[T]{size: b.size}
	if len(b.data) > 0 {
		out.data = make([]T, len(b.data))
		copy(out.data, b.data)
	}
	return out
}

// Width returns the bitmap width in cells
func (b *Bitmap[T]) Width() int {
	return b.size.Width
}

// Height returns the bitmap height in cells
func (b *Bitmap[T]) Height() int {
	return b.size.Height
}

// Size returns the bitmap dimensions
func (b *Bitmap[T]) Size() geometry.Size {
	return b.size
}

// PointCount returns the number of cells, recomputed from the
// dimensions
func (b *Bitmap[T]) PointCount() int {
	return b.size.Width * b.size.Height
}

// Data returns the backing storage in row-major order, or nil when the
// bitmap holds no cells. The slice stays valid until the next Resize;
// writing through it is the supported bulk-mutation path and is not
// bounds-mediated in any way.
func (b *Bitmap[T]) Data() []T {
	if len(b.data) == 0 {
		return nil
	}
	return b.data
}

// Offset converts a coordinate to its linear storage offset. No range
// check is performed: out-of-range input yields an out-of-range offset.
func (b *Bitmap[T]) Offset(x, y int) int {
	return y*b.size.Width + x
}

// OffsetPoint converts a point to its linear storage offset, without
// range checking
func (b *Bitmap[T]) OffsetPoint(p geometry.Point) int {
	return b.Offset(p.X, p.Y)
}

// inBounds returns true if the coordinate addresses a cell
func (b *Bitmap[T]) inBounds(x, y int) bool {
	return x >= 0 && x < b.size.Width && y >= 0 && y < b.size.Height
}

// At returns a pointer to the cell at (x, y); writes through it are
// immediately visible. Fails with ErrOutOfRange when the coordinate is
// outside the bitmap. The pointer stays valid until the next Resize.
func (b *Bitmap[T]) At(x, y int) (*T, error) {
	if !b.inBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d) outside %s", ErrOutOfRange, x, y, b.size)
	}
	return &b.data[b.Offset(x, y)], nil
}

// AtPoint is At addressed by a point
func (b *Bitmap[T]) AtPoint(p geometry.Point) (*T, error) {
	return b.At(p.X, p.Y)
}

// AtUnchecked returns a pointer to the cell at (x, y) with no bounds
// check. An out-of-range coordinate panics or corrupts a neighbouring
// row; callers opt into this fast path only when the coordinate is
// known valid.
func (b *Bitmap[T]) AtUnchecked(x, y int) *T {
	return &b.data[b.Offset(x, y)]
}

// Get returns the value at (x, y), failing with ErrOutOfRange when the
// coordinate is outside the bitmap
func (b *Bitmap[T]) Get(x, y int) (T, error) {
	p, err := b.At(x, y)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores v at (x, y), failing with ErrOutOfRange when the
// coordinate is outside the bitmap
func (b *Bitmap[T]) Set(x, y int, v T) error {
	p, err := b.At(x, y)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Fill sets every cell to v using exponential copy
func (b *Bitmap[T]) Fill(v T) {
	if len(b.data) == 0 {
		return
	}
	b.data[0] = v
	for filled := 1; filled < len(b.data); filled *= 2 {
		copy(b.data[filled:], b.data[:filled])
	}
}

// Resize replaces the storage with a fresh buffer of the given size,
// every cell set to fill. Old content is not carried over and previously
// obtained pointers and Data slices become invalid. Fails with
// ErrInvalidSize exactly as construction does, leaving the bitmap
// untouched.
func (b *Bitmap[T]) Resize(size geometry.Size, fill T) error {
	if !size.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	b.data = make([]T, size.PointCount())
	b.size = size
	b.Fill(fill)
	return nil
}

// ResizeWH is Resize with explicit width and height
func (b *Bitmap[T]) ResizeWH(width, height int, fill T) error {
	return b.Resize(geometry.Sz(width, height), fill)
}

// Sub returns the cells under r as a new independent bitmap of r's
// size. Cells of r that fall outside the source keep fill: a rectangle
// reaching past the right or bottom edge pads instead of failing, and
// one whose origin lies entirely outside the source returns a
// fill-only result. The source is never mutated. The only error is
// ErrInvalidSize when r's size itself is not representable.
func (b *Bitmap[T]) Sub(r geometry.Rect, fill T) (*Bitmap[T], error) {
	out, err := New(r.Size, fill)
	if err != nil {
		return nil, fmt.Errorf("sub %s: %w", r, err)
	}

	// Origin beyond the source (or before it, with signed coordinates)
	// is the defined empty-overlap case, not an error.
	if r.X() < 0 || r.X() >= b.Width() || r.Y() < 0 || r.Y() >= b.Height() {
		return out, nil
	}

	xEnd := min(r.Width(), b.Width()-r.X())
	yEnd := min(r.Height(), b.Height()-r.Y())

	for y := 0; y < yEnd; y++ {
		src := b.Offset(r.X(), r.Y()+y)
		dst := out.Offset(0, y)
		copy(out.data[dst:dst+xEnd], b.data[src:src+xEnd])
	}
	return out, nil
}

// String returns a short debug description
func (b *Bitmap[T]) String() string {
	return fmt.Sprintf("bitmap %s (%d points)", b.size, b.PointCount())
}

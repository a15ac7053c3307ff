package bitmap

import (
	"iter"

	"github.com/lixenwraith/bitmap/geometry"
)

// Iteration follows the slices package surface: All/Backward yield
// linear index and value, Values yields values only, Points adds the
// coordinate form. All sequences are restartable and run in storage
// order, which is row-major by the layout contract. For mutation during
// traversal use Data.

// All returns a forward iterator over linear index/value pairs in
// row-major order
func (b *Bitmap[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward returns an iterator over linear index/value pairs from the
// last cell to the first
func (b *Bitmap[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(b.data) - 1; i >= 0; i-- {
			if !yield(i, b.data[i]) {
				return
			}
		}
	}
}

// Values returns a forward iterator over cell values in row-major order
func (b *Bitmap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Points returns a forward iterator over coordinate/value pairs in
// row-major order
func (b *Bitmap[T]) Points() iter.Seq2[geometry.Point, T] {
	return func(yield func(geometry.Point, T) bool) {
		w := b.size.Width
		for i, v := range b.data {
			if !yield(geometry.Pt(i%w, i/w), v) {
				return
			}
		}
	}
}

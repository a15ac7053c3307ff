// Package matrix bridges float64 bitmaps and gonum dense matrices.
// Both sides are row-major, so conversion is a straight copy: bitmap
// row y becomes matrix row y.
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/lixenwraith/bitmap"
)

// FromBitmap copies a float64 bitmap into a new mat.Dense with
// Height rows and Width columns
func FromBitmap(b *bitmap.Bitmap[float64]) *mat.Dense {
	if b.PointCount() == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, b.PointCount())
	copy(data, b.Data())
	return mat.NewDense(b.Height(), b.Width(), data)
}

// ToBitmap copies a gonum matrix into a new float64 bitmap with the
// matrix's column count as width and row count as height
func ToBitmap(m mat.Matrix) (*bitmap.Bitmap[float64], error) {
	rows, cols := m.Dims()
	b, err := bitmap.NewWH[float64](cols, rows, 0)
	if err != nil {
		return nil, err
	}
	data := b.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[b.Offset(j, i)] = m.At(i, j)
		}
	}
	return b, nil
}

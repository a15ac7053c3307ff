package bitmap

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/lixenwraith/bitmap/geometry"
)

func TestSubFullContainment(t *testing.T) {
	src, _ := FromSlice(geometry.Sz(4, 3), []int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	r := geometry.Rt(1, 1, 2, 2)

	sub, err := src.Sub(r, -1)
	if err != nil {
		t.Fatalf("Expected extraction to succeed, got %v", err)
	}
	if sub.Size() != r.Size {
		t.Fatalf("Expected %s result, got %s", r.Size, sub.Size())
	}
	// Must equal a manual copy of the covered cells
	for j := 0; j < r.Height(); j++ {
		for i := 0; i < r.Width(); i++ {
			want, _ := src.Get(r.X()+i, r.Y()+j)
			got, _ := sub.Get(i, j)
			if got != want {
				t.Errorf("sub(%d, %d) = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestSubClipsAndPads(t *testing.T) {
	// 3x2 grid, 0-filled, with 5 at (1, 0) and 9 at (2, 1)
	src, _ := NewWH(3, 2, 0)
	if err := src.Set(1, 0, 5); err != nil {
		t.Fatal(err)
	}
	if err := src.Set(2, 1, 9); err != nil {
		t.Fatal(err)
	}

	sub, err := src.Sub(geometry.Rt(1, 0, 3, 2), -1)
	if err != nil {
		t.Fatalf("Expected extraction to succeed, got %v", err)
	}
	// Columns 1-2 of each row land at 0-1, the third column pads
	want := []int{
		5, 0, -1,
		0, 9, -1,
	}
	if got := slices.Collect(sub.Values()); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSubBottomClip(t *testing.T) {
	src, _ := FromSlice(geometry.Sz(2, 2), []int{1, 2, 3, 4})
	sub, err := src.Sub(geometry.Rt(0, 1, 2, 3), 0)
	if err != nil {
		t.Fatalf("Expected extraction to succeed, got %v", err)
	}
	want := []int{
		3, 4,
		0, 0,
		0, 0,
	}
	if got := slices.Collect(sub.Values()); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSubZeroOverlap(t *testing.T) {
	src, _ := NewWH(3, 2, 7)
	for _, r := range []geometry.Rect{
		geometry.Rt(3, 0, 2, 2),  // origin at the right edge
		geometry.Rt(0, 2, 2, 2),  // origin at the bottom edge
		geometry.Rt(10, 10, 2, 2),
		geometry.Rt(-1, 0, 2, 2), // signed coordinates: before the grid
	} {
		sub, err := src.Sub(r, -1)
		if err != nil {
			t.Fatalf("Sub(%s): expected fill-only result, got %v", r, err)
		}
		if sub.Size() != r.Size {
			t.Errorf("Sub(%s): expected %s result, got %s", r, r.Size, sub.Size())
		}
		for i, v := range sub.All() {
			if v != -1 {
				t.Errorf("Sub(%s): expected cell %d to be fill, got %d", r, i, v)
			}
		}
	}
}

func TestSubIndependence(t *testing.T) {
	src, _ := FromSlice(geometry.Sz(2, 2), []int{1, 2, 3, 4})
	sub, err := src.Sub(geometry.Rt(0, 0, 2, 2), 0)
	if err != nil {
		t.Fatal(err)
	}
	sub.Data()[0] = 99
	if src.Data()[0] != 1 {
		t.Error("Expected sub storage to be independent of the source")
	}
	src.Data()[1] = 88
	if sub.Data()[1] != 2 {
		t.Error("Expected source writes not to reach the sub")
	}
}

func TestSubEmptyRect(t *testing.T) {
	src, _ := NewWH(3, 2, 1)
	sub, err := src.Sub(geometry.Rt(0, 0, 0, 0), 0)
	if err != nil {
		t.Fatalf("Expected empty extraction to succeed, got %v", err)
	}
	if sub.PointCount() != 0 {
		t.Errorf("Expected empty result, got %s", sub.Size())
	}
}

func TestSubInvalidRectSize(t *testing.T) {
	src, _ := NewWH(3, 2, 0)
	_, err := src.Sub(geometry.Rt(0, 0, math.MaxInt, 2), 0)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
	_, err = src.Sub(geometry.Rt(0, 0, -1, 2), 0)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
}

func BenchmarkSub(b *testing.B) {
	src, _ := NewWH(1024, 1024, byte(0))
	r := geometry.Rt(128, 128, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := src.Sub(r, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFill(b *testing.B) {
	dst, _ := NewWH(1024, 1024, byte(0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst.Fill(byte(i))
	}
}

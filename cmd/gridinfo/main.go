// gridinfo reports the row-major layout of a grid: point counts, the
// linear offset of a coordinate, and what a sub-region extraction would
// actually copy after clipping.
//
//	gridinfo -size 640x480 -rect 100x100+600+400 -point "(12, 7)"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/bitmap"
	"github.com/lixenwraith/bitmap/geometry"
)

func main() {
	var (
		sizeStr  string
		rectStr  string
		pointStr string
	)
	flag.StringVar(&sizeStr, "size", "", "Grid size as WxH (required)")
	flag.StringVar(&rectStr, "rect", "", "Sub-region as WxH+X+Y")
	flag.StringVar(&pointStr, "point", "", "Coordinate as \"(x, y)\"")
	flag.Parse()

	if sizeStr == "" {
		flag.Usage()
		os.Exit(1)
	}

	size, err := geometry.ParseSize(sizeStr)
	if err != nil {
		log.Fatalf("bad -size: %v", err)
	}
	grid, err := bitmap.New(size, byte(0))
	if err != nil {
		log.Fatalf("bad -size: %v", err)
	}
	fmt.Printf("grid %s: %d points, rows of %d cells\n",
		size, grid.PointCount(), grid.Width())

	if pointStr != "" {
		p, err := geometry.ParsePoint(pointStr)
		if err != nil {
			log.Fatalf("bad -point: %v", err)
		}
		if _, err := grid.AtPoint(p); err != nil {
			fmt.Printf("point %s: %v\n", p, err)
		} else {
			fmt.Printf("point %s: offset %d\n", p, grid.OffsetPoint(p))
		}
	}

	if rectStr != "" {
		r, err := geometry.ParseRect(rectStr)
		if err != nil {
			log.Fatalf("bad -rect: %v", err)
		}
		reportOverlap(grid.Size(), r)
	}
}

// reportOverlap prints the extent a Sub call would copy, mirroring the
// container's clipping policy: empty overlap when the origin lies
// outside the source, right/bottom clipping otherwise.
func reportOverlap(size geometry.Size, r geometry.Rect) {
	if !r.Size.IsValid() {
		fmt.Printf("rect %s: invalid size\n", r)
		return
	}
	if r.X() < 0 || r.X() >= size.Width || r.Y() < 0 || r.Y() >= size.Height {
		fmt.Printf("rect %s: no overlap, result is fill-only\n", r)
		return
	}
	xEnd := min(r.Width(), size.Width-r.X())
	yEnd := min(r.Height(), size.Height-r.Y())
	fmt.Printf("rect %s: copies %dx%d of %s, pads %d cells\n",
		r, xEnd, yEnd, r.Size, r.Size.PointCount()-xEnd*yEnd)
}

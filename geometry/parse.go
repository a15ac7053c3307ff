package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePoint parses the "(x, y)" form produced by Point.String
func ParsePoint(s string) (Point, error) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return Point{}, fmt.Errorf("parse point %q: expected \"(x, y)\"", s)
	}
	xs, ys, ok := strings.Cut(inner, ",")
	if !ok {
		return Point{}, fmt.Errorf("parse point %q: missing comma", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	return Pt(x, y), nil
}

// ParseSize parses the "WxH" form produced by Size.String
func ParseSize(s string) (Size, error) {
	ws, hs, ok := strings.Cut(strings.TrimSpace(s), "x")
	if !ok {
		return Size{}, fmt.Errorf("parse size %q: expected \"WxH\"", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return Size{}, fmt.Errorf("parse size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return Size{}, fmt.Errorf("parse size %q: %w", s, err)
	}
	return Sz(w, h), nil
}

// ParseRect parses the "WxH+X+Y" form produced by Rect.String
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	if len(parts) != 3 {
		return Rect{}, fmt.Errorf("parse rect %q: expected \"WxH+X+Y\"", s)
	}
	size, err := ParseSize(parts[0])
	if err != nil {
		return Rect{}, fmt.Errorf("parse rect %q: %w", s, err)
	}
	x, err := strconv.Atoi(parts[1])
	if err != nil {
		return Rect{}, fmt.Errorf("parse rect %q: %w", s, err)
	}
	y, err := strconv.Atoi(parts[2])
	if err != nil {
		return Rect{}, fmt.Errorf("parse rect %q: %w", s, err)
	}
	return Rect{Pos: Pt(x, y), Size: size}, nil
}

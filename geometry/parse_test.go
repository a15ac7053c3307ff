package geometry

import "testing"

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("(12, 7)")
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if !p.Equal(Pt(12, 7)) {
		t.Errorf("Expected (12, 7), got %s", p)
	}

	// String output must parse back
	rt, err := ParsePoint(Pt(3, 4).String())
	if err != nil || !rt.Equal(Pt(3, 4)) {
		t.Errorf("Round trip failed: %s, %v", rt, err)
	}

	for _, bad := range []string{"", "12, 7", "(12 7)", "(a, 7)", "(12, )"} {
		if _, err := ParsePoint(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestParseSize(t *testing.T) {
	s, err := ParseSize("640x480")
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if s != Sz(640, 480) {
		t.Errorf("Expected 640x480, got %s", s)
	}

	rt, err := ParseSize(Sz(3, 2).String())
	if err != nil || rt != Sz(3, 2) {
		t.Errorf("Round trip failed: %s, %v", rt, err)
	}

	for _, bad := range []string{"", "640", "x480", "640x", "wxh"} {
		if _, err := ParseSize(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestParseRect(t *testing.T) {
	r, err := ParseRect("100x100+600+400")
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if r != Rt(600, 400, 100, 100) {
		t.Errorf("Expected 100x100+600+400, got %s", r)
	}

	rt, err := ParseRect(Rt(1, 0, 3, 2).String())
	if err != nil || rt != Rt(1, 0, 3, 2) {
		t.Errorf("Round trip failed: %s, %v", rt, err)
	}

	for _, bad := range []string{"", "3x2", "3x2+1", "3x2+1+2+3", "3x2+a+0"} {
		if _, err := ParseRect(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

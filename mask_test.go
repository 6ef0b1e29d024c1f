package hyperspace

import "testing"

func TestNewMaskRadii(t *testing.T) {
	m := NewMask(Vec2{500, 400}, 1000, 800, 0.04, 0.36, 0.55, 1)
	assertNear(t, "Inner", m.Inner, 32)
	assertNear(t, "Outer", m.Outer, 288)
	if m.Origin != (Vec2{500, 400}) {
		t.Errorf("Origin = %v", m.Origin)
	}
}

func TestNewMaskDegenerate(t *testing.T) {
	tests := []struct {
		name            string
		w, h            float64
		zero, full      float64
		wantIn, wantOut float64
	}{
		{"equal fractions", 1000, 800, 0.2, 0.2, 160, 161},
		{"outer below inner", 1000, 800, 0.3, 0.1, 240, 241},
		{"negative inner", 1000, 800, -0.5, 0.4, 0, 320},
		{"zero surface", 0, 0, 0.04, 0.36, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMask(Vec2{}, tt.w, tt.h, tt.zero, tt.full, 0.5, 1)
			assertNear(t, "Inner", m.Inner, tt.wantIn)
			assertNear(t, "Outer", m.Outer, tt.wantOut)
		})
	}
}

func TestMaskAlphaStops(t *testing.T) {
	m := Mask{Origin: Vec2{100, 100}, Inner: 10, Outer: 110, MidOpacity: 0.5, OuterOpacity: 0.9}

	assertNear(t, "center", m.Alpha(100, 100), 0)
	assertNear(t, "inner edge", m.Alpha(110, 100), 0)
	assertNear(t, "mid stop", m.Alpha(100, 100+10+55), 0.5)
	assertNear(t, "outer edge", m.Alpha(100+110, 100), 0.9)
	assertNear(t, "beyond", m.Alpha(1000, 1000), 0.9)
	// Halfway to the mid stop.
	assertNear(t, "quarter", m.Alpha(100+10+27.5, 100), 0.25)
}

func TestMaskAlphaMonotonic(t *testing.T) {
	m := NewMask(Vec2{0, 0}, 1000, 1000, 0.05, 0.4, 0.55, 1)
	prev := -1.0
	for x := 0.0; x < 600; x += 2.5 {
		a := m.Alpha(x, 0)
		if a < prev {
			t.Fatalf("alpha decreased at x=%f: %f < %f", x, a, prev)
		}
		if a < 0 || a > 1 {
			t.Fatalf("alpha %f out of range at x=%f", a, x)
		}
		prev = a
	}
}

func TestMaskRecomputedNotPatched(t *testing.T) {
	a := NewMask(Vec2{10, 10}, 400, 300, 0.04, 0.36, 0.55, 1)
	b := NewMask(Vec2{20, 10}, 400, 300, 0.04, 0.36, 0.55, 1)
	if a == b {
		t.Error("masks for different origins compare equal")
	}
	if a != NewMask(Vec2{10, 10}, 400, 300, 0.04, 0.36, 0.55, 1) {
		t.Error("identical inputs produced different masks")
	}
}

package hyperspace

import (
	"math"
	"testing"
	"time"
)

// testSurface is a mutable Surface.
type testSurface struct {
	rect  Rect
	scale float64
}

func newTestSurface(w, h float64) *testSurface {
	return &testSurface{rect: Rect{Width: w, Height: h}, scale: 1}
}

func (s *testSurface) Bounds() Rect         { return s.rect }
func (s *testSurface) DeviceScale() float64 { return s.scale }

// testAnchor is a mutable Anchor.
type testAnchor struct {
	rect Rect
}

func (a *testAnchor) Bounds() Rect { return a.rect }

// recordingCanvas counts strokes and keeps the last color.
type recordingCanvas struct {
	strokes int
	colors  []Color
	widths  []float64
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	c.strokes++
	c.colors = append(c.colors, col)
	c.widths = append(c.widths, width)
}

// testClock is a manually advanced clock for FrameQueue.
type testClock struct {
	now time.Duration
}

func (c *testClock) Now() time.Duration { return c.now }

const frame = 16 * time.Millisecond

// advanceFrames ticks f n times at 16ms intervals starting after *now.
func advanceFrames(f *Field, now *time.Duration, n int) {
	for i := 0; i < n; i++ {
		*now += frame
		f.Advance(*now, frame.Seconds())
	}
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

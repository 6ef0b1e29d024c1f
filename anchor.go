package hyperspace

import (
	"math"
	"time"
)

// boundsSource is anything with a measurable screen rectangle.
type boundsSource interface {
	Bounds() Rect
}

// boundsWatch is one independent size/position observation.
type boundsWatch struct {
	target boundsSource // nil once detached
	last   Rect
	seen   bool
}

// poll re-measures the target and reports whether its bounds changed.
func (w *boundsWatch) poll() bool {
	if w.target == nil {
		return false
	}
	b := w.target.Bounds()
	if w.seen && b == w.last {
		return false
	}
	w.last, w.seen = b, true
	return true
}

// tracker resolves the simulation origin from the surface and optional anchor.
// All derived fields are recomputed from the latest measurements; nothing is
// patched incrementally, so the surface and anchor observations may fire in
// any order.
type tracker struct {
	surface   boundsWatch
	anchor    boundsWatch
	scaleSrc  Surface
	hasAnchor bool

	dpr    float64
	w, h   int  // surface size in device pixels
	origin Vec2 // device pixels, surface-local

	anchorReady   bool
	anchorReadyAt time.Duration
	readyPending  bool // ready from construction; timestamp taken on first sync
}

func newTracker(s Surface, a Anchor) *tracker {
	t := &tracker{
		surface:  boundsWatch{target: s},
		scaleSrc: s,
		dpr:      1,
	}
	if a != nil {
		t.anchor.target = a
		t.hasAnchor = true
	} else {
		t.anchorReady = true
		t.readyPending = true
	}
	return t
}

// sync polls both observations and recomputes when either changed.
// It returns true when the derived geometry changed.
func (t *tracker) sync(now time.Duration) bool {
	if t.readyPending {
		t.anchorReadyAt = now
		t.readyPending = false
	}
	changed := t.surface.poll()
	if t.anchor.poll() {
		changed = true
	}
	if t.scaleSrc != nil {
		if dpr := resolveDeviceScale(t.scaleSrc.DeviceScale()); dpr != t.dpr {
			changed = true
		}
	}
	if !changed {
		return false
	}
	return t.recompute(now)
}

// recompute derives the device size, origin and anchor readiness from the
// most recent measurements. Returns true if any derived value changed.
func (t *tracker) recompute(now time.Duration) bool {
	prevW, prevH, prevOrigin, prevDPR := t.w, t.h, t.origin, t.dpr

	if t.scaleSrc != nil {
		t.dpr = resolveDeviceScale(t.scaleSrc.DeviceScale())
	}
	sb := t.surface.last
	t.w = max(0, int(math.Floor(sb.Width*t.dpr)))
	t.h = max(0, int(math.Floor(sb.Height*t.dpr)))
	t.origin = Vec2{X: float64(t.w) / 2, Y: float64(t.h) / 2}

	if t.hasAnchor && t.anchor.seen && !t.anchor.last.Empty() {
		c := t.anchor.last.Center()
		t.origin = Vec2{
			X: (c.X - sb.X) * t.dpr,
			Y: (c.Y - sb.Y) * t.dpr,
		}
		if !t.anchorReady {
			t.anchorReady = true
			t.anchorReadyAt = now
		}
	}

	return t.w != prevW || t.h != prevH || t.origin != prevOrigin || t.dpr != prevDPR
}

// forget drops the cached measurement of a watch so the next sync re-measures
// and recomputes even if the bounds look unchanged.
func (w *boundsWatch) forget() {
	w.seen = false
}

// detach disconnects both observations. Safe to call more than once.
func (t *tracker) detach() {
	t.surface.target = nil
	t.anchor.target = nil
	t.scaleSrc = nil
}

// margin is the respawn allowance outside the surface, in device pixels.
func (t *tracker) margin() float64 {
	return 40 * t.dpr
}

// minDim is the smaller surface dimension in device pixels.
func (t *tracker) minDim() float64 {
	return float64(min(t.w, t.h))
}

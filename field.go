package hyperspace

import "time"

// RevealEvent describes the one-time transition to visible.
type RevealEvent struct {
	At          time.Duration // frame time of the reveal
	Stars       int
	SpreadRatio float64
}

// RevealSink is the optional receiver of reveal notifications.
// When set on a Field, Revealed is called once, from the frame that reveals.
type RevealSink interface {
	Revealed(event RevealEvent)
}

// Field is one running starfield: it owns the star pool, origin, mask and
// reveal state. All methods must be called from the host's frame thread.
type Field struct {
	cfg     Config
	inert   bool
	holding bool // reveal waits for the anchor
	closed  bool

	tracker *tracker
	pool    pool
	tails   []Vec2
	mask    Mask
	sized   bool

	reveal reveal
	colors colorCycler
	sink   RevealSink

	now   time.Duration
	stats FrameStats
	debug bool
}

// New creates a field laid over surface, optionally centered on anchor.
// A nil surface yields an inert field that never simulates or paints.
func New(surface Surface, anchor Anchor, cfg Config) *Field {
	cfg = cfg.sanitized()
	pal := cfg.Palette
	if pal == nil {
		pal = DefaultPalette(cfg.Dark)
	}
	f := &Field{
		cfg:     cfg,
		inert:   surface == nil,
		holding: anchor != nil && cfg.HoldUntilAnchor,
		tracker: newTracker(surface, anchor),
		reveal:  newReveal(cfg.StartDelay, cfg.MinRevealSpreadRatio),
		colors:  newColorCycler(pal, pal, cfg.introWindow()),
		debug:   cfg.Debug,
	}
	return f
}

// SetRevealSink sets the optional reveal receiver.
func (f *Field) SetRevealSink(sink RevealSink) {
	f.sink = sink
}

// SetDebugMode enables or disables per-frame stats on stderr.
func (f *Field) SetDebugMode(enabled bool) {
	f.debug = enabled
}

// Advance runs one frame: origin update, mask recomputation if the geometry
// changed, one simulation step of dt seconds, then the reveal check.
// now is the frame's monotonic timestamp.
func (f *Field) Advance(now time.Duration, dt float64) {
	if f.inert || f.closed {
		return
	}
	var t0 time.Time
	if f.debug {
		t0 = time.Now()
	}

	f.now = now
	f.refresh(now)

	if f.reveal.state == RevealWarmingUp {
		switch {
		case !f.holding:
			f.reveal.arm(now)
			f.debugTransition(RevealArmed, now)
		case f.tracker.anchorReady:
			f.reveal.arm(f.tracker.anchorReadyAt)
			f.debugTransition(RevealArmed, now)
		}
	}

	f.stats = f.step(dt)

	w, h := float64(f.tracker.w), float64(f.tracker.h)
	if f.reveal.evaluate(now, f.stats, w, h) {
		f.debugTransition(RevealVisible, now)
		if f.sink != nil {
			f.sink.Revealed(RevealEvent{
				At:          now,
				Stars:       f.stats.Count,
				SpreadRatio: f.stats.SpreadRatio(),
			})
		}
	}

	if f.debug {
		f.debugLog(debugStats{
			stepTime: time.Since(t0),
			stats:    f.stats,
			covers:   f.stats.Covers(w, h, min(w, h)*coverageEdge),
			state:    f.reveal.state,
		})
	}
}

// SurfaceChanged is the surface resize observation. It re-measures and
// recomputes origin, mask and pool size immediately.
func (f *Field) SurfaceChanged() {
	if f.inert || f.closed {
		return
	}
	f.tracker.surface.forget()
	f.refresh(f.now)
}

// AnchorChanged is the anchor resize observation. It re-measures and
// recomputes origin and mask immediately.
func (f *Field) AnchorChanged() {
	if f.inert || f.closed {
		return
	}
	f.tracker.anchor.forget()
	f.refresh(f.now)
}

// refresh syncs the tracker and rebuilds everything derived from geometry.
func (f *Field) refresh(now time.Duration) {
	if !f.tracker.sync(now) && f.sized {
		return
	}
	f.sized = true
	t := f.tracker
	f.mask = NewMask(t.origin, float64(t.w), float64(t.h),
		f.cfg.CenterZero, f.cfg.CenterFull, f.cfg.MidOpacity, f.cfg.OuterOpacity)
	f.pool.resize(targetPoolSize(t.w, t.h, f.cfg.Density), f.spawnParams())
}

// spawnParams captures the current spawn geometry.
func (f *Field) spawnParams() spawnParams {
	t := f.tracker
	frac := f.cfg.SpawnMinRadiusFraction
	if f.reveal.hidden() {
		frac = f.cfg.HiddenSpawnMinRadiusFraction
	}
	return spawnParams{
		cx:      t.origin.X,
		cy:      t.origin.Y,
		w:       float64(t.w),
		h:       float64(t.h),
		margin:  t.margin(),
		minFrac: frac,
		colors:  f.colors.palette.Len(),
	}
}

// Draw paints every star's streak onto c. It paints nothing until the field
// is visible and reports whether anything was drawn.
func (f *Field) Draw(c Canvas) bool {
	if c == nil || f.inert || f.closed || !f.Visible() {
		return false
	}
	since := f.now - f.reveal.visibleAt
	dpr := f.tracker.dpr
	for i := range f.pool.stars {
		s := &f.pool.stars[i]
		tail := Vec2{X: s.x, Y: s.y}
		if i < len(f.tails) {
			tail = f.tails[i]
		}
		width := (0.6 + 1.4*(1-s.z)) * dpr
		c.StrokeLine(tail.X, tail.Y, s.x, s.y, width, f.colors.strokeColor(s, since))
	}
	return true
}

// Close detaches the surface and anchor observations and stops all further
// mutation. Safe to call more than once.
func (f *Field) Close() {
	f.closed = true
	f.tracker.detach()
}

// Visible reports whether the field has been revealed.
func (f *Field) Visible() bool {
	return f.reveal.state == RevealVisible
}

// State returns the current reveal state.
func (f *Field) State() RevealState {
	return f.reveal.state
}

// VisibleAt returns the frame time of the reveal; zero while hidden.
func (f *Field) VisibleAt() time.Duration {
	return f.reveal.visibleAt
}

// Mask returns the current transparency mask.
func (f *Field) Mask() Mask {
	return f.mask
}

// Size returns the surface size in device pixels.
func (f *Field) Size() (w, h int) {
	return f.tracker.w, f.tracker.h
}

// DeviceScale returns the resolved device-pixel ratio.
func (f *Field) DeviceScale() float64 {
	return f.tracker.dpr
}

// Origin returns the simulation center in device pixels.
func (f *Field) Origin() Vec2 {
	return f.tracker.origin
}

// Stats returns the statistics of the most recent step.
func (f *Field) Stats() FrameStats {
	return f.stats
}

// StarCount returns the current pool size.
func (f *Field) StarCount() int {
	return f.pool.Len()
}

// Config returns the sanitized configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// Blend returns the compositing mode for the field's layer.
func (f *Field) Blend() BlendMode {
	if f.cfg.Dark {
		return BlendAdd
	}
	return BlendNormal
}

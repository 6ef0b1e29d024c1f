package hyperspace

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// visibleField returns a sized field forced into the visible state.
func visibleField(w, h float64) *Field {
	f := New(newTestSurface(w, h), nil, DefaultConfig())
	f.Advance(time.Second, frame.Seconds())
	f.reveal.state = RevealVisible
	f.reveal.visibleAt = time.Second
	return f
}

func TestNewLayerDefaults(t *testing.T) {
	f := New(newTestSurface(10, 10), nil, DefaultConfig())
	l := NewLayer(f)
	if l.Field() != f {
		t.Error("Field() mismatch")
	}
	if l.Alpha() != 0 {
		t.Errorf("Alpha = %f, want 0", l.Alpha())
	}
	if l.debugOverlay {
		t.Error("debug overlay should default off")
	}
}

func TestLayerFadeWaitsForReveal(t *testing.T) {
	f := New(newTestSurface(200, 100), &testAnchor{}, DefaultConfig())
	f.Advance(time.Second, frame.Seconds())
	l := NewLayer(f)
	l.Update(0.5)
	if l.fade != nil || l.Alpha() != 0 {
		t.Errorf("fade started while hidden (alpha %f)", l.Alpha())
	}
}

func TestLayerFadeReachesOpacity(t *testing.T) {
	l := NewLayer(visibleField(200, 100))

	// Exact halves of the default 900ms fade.
	l.Update(0.45)
	if l.Alpha() <= 0 || l.Alpha() >= 0.9 {
		t.Errorf("mid-fade alpha = %f, want in (0, 0.9)", l.Alpha())
	}
	l.Update(0.45)
	if !l.fade.Done {
		t.Fatal("expected fade done")
	}
	if math.Abs(l.Alpha()-0.9) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.9", l.Alpha())
	}
}

func TestLayerDrawHiddenPaintsNothing(t *testing.T) {
	f := New(newTestSurface(64, 32), &testAnchor{}, DefaultConfig())
	f.Advance(time.Second, frame.Seconds())
	l := NewLayer(f)
	if l.drawField(ebiten.NewImage(64, 32)) {
		t.Error("drawField painted a hidden field")
	}
	if l.buf != nil {
		t.Error("buffer allocated for a hidden field")
	}
}

func TestLayerDrawCachesMask(t *testing.T) {
	f := visibleField(64, 32)
	l := NewLayer(f)
	target := ebiten.NewImage(64, 32)

	if !l.drawField(target) {
		t.Fatal("drawField returned false for a visible field")
	}
	if b := l.buf.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("buffer = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
	if l.maskKey != gradientKeyOf(f.Mask()) {
		t.Error("mask key does not match the field mask")
	}
	if b := l.maskBuf.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("mask buffer = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
	first := l.maskImg

	l.drawField(target)
	if l.maskImg != first {
		t.Error("mask image rebuilt without a geometry change")
	}

	l.Dispose()
	if l.buf != nil || l.maskImg != nil || l.maskBuf != nil {
		t.Error("Dispose did not release images")
	}
}

func TestLayerMovingOriginKeepsGradient(t *testing.T) {
	anchor := &testAnchor{rect: Rect{X: 100, Y: 80, Width: 40, Height: 20}}
	f := New(newTestSurface(320, 200), anchor, DefaultConfig())
	now := time.Second
	f.Advance(now, frame.Seconds())
	f.reveal.state = RevealVisible
	f.reveal.visibleAt = now

	l := NewLayer(f)
	target := ebiten.NewImage(320, 200)
	l.drawField(target)
	grad, maskBuf := l.maskImg, l.maskBuf

	for i := 0; i < 30; i++ {
		anchor.rect.X += 0.5
		anchor.rect.Y += 0.25
		advanceFrames(f, &now, 1)
		l.drawField(target)
	}
	if f.Origin() == (Vec2{120, 90}) {
		t.Fatal("origin did not follow the anchor")
	}
	if l.maskImg != grad {
		t.Error("gradient image reallocated for an origin-only change")
	}
	if l.maskBuf != maskBuf {
		t.Error("mask buffer reallocated without a size change")
	}
}

func TestLayerResizeRebuildsGradient(t *testing.T) {
	surface := newTestSurface(320, 200)
	f := New(surface, nil, DefaultConfig())
	f.Advance(time.Second, frame.Seconds())
	f.reveal.state = RevealVisible

	l := NewLayer(f)
	l.drawField(ebiten.NewImage(640, 400))
	grad := l.maskImg

	surface.rect = Rect{Width: 640, Height: 400}
	f.SurfaceChanged()
	l.drawField(ebiten.NewImage(640, 400))
	if l.maskImg == grad {
		t.Error("gradient image kept after the mask radii changed")
	}
	if l.maskKey != gradientKeyOf(f.Mask()) {
		t.Error("mask key does not match the resized field mask")
	}
}

func TestBuildMaskImage(t *testing.T) {
	m := Mask{Origin: Vec2{500, 500}, Inner: 10, Outer: 20, MidOpacity: 0.5, OuterOpacity: 0.8}
	img := buildMaskImage(m)
	if b := img.Bounds(); b.Dx() != 42 || b.Dy() != 42 {
		t.Fatalf("bounds = %v, want 42x42", b)
	}
	if c := img.NRGBAAt(21, 21); c.A != 0 {
		t.Errorf("center alpha = %d, want 0", c.A)
	}
	// Every border pixel lies past the outer radius.
	for _, p := range [][2]int{{0, 0}, {0, 21}, {21, 0}, {41, 41}, {41, 21}} {
		if c := img.NRGBAAt(p[0], p[1]); c.A != 204 || c.R != 255 {
			t.Errorf("pixel %v = %v, want white at the outer opacity", p, c)
		}
	}
	if gradientCenter(m) != 21 {
		t.Errorf("gradientCenter = %f, want 21", gradientCenter(m))
	}
}

func TestBlendModeMapping(t *testing.T) {
	if BlendAdd.EbitenBlend() != ebiten.BlendLighter {
		t.Error("BlendAdd should map to BlendLighter")
	}
	if BlendNormal.EbitenBlend() != ebiten.BlendSourceOver {
		t.Error("BlendNormal should map to BlendSourceOver")
	}
	m := BlendMask.EbitenBlend()
	if m.BlendFactorSourceRGB != ebiten.BlendFactorZero || m.BlendFactorDestinationAlpha != ebiten.BlendFactorSourceAlpha {
		t.Error("BlendMask should keep the destination scaled by source alpha")
	}
}

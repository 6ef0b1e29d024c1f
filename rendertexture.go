package hyperspace

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// Layer renders a Field with Ebitengine. Streaks are drawn into an offscreen
// image owned by the layer, clipped by the field's mask, and composited onto
// the target with the fade-in opacity. Nothing is drawn until the field is
// visible.
type Layer struct {
	field *Field

	// X and Y are the target-space position of the surface's top-left corner.
	X, Y float64

	buf     *ebiten.Image
	maskBuf *ebiten.Image // surface-sized mask, recomposed each frame
	maskImg *ebiten.Image // cached radial gradient, positioned by GeoM
	maskKey gradientKey

	fade  *Fade
	alpha float64

	debugOverlay bool

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
	shots           int
}

// NewLayer creates a layer for f.
func NewLayer(f *Field) *Layer {
	return &Layer{
		field:         f,
		ScreenshotDir: "screenshots",
	}
}

// Field returns the field rendered by this layer.
func (l *Layer) Field() *Field {
	return l.field
}

// Alpha returns the current composited opacity.
func (l *Layer) Alpha() float64 {
	return l.alpha
}

// SetDebugOverlay enables or disables the stats overlay.
func (l *Layer) SetDebugOverlay(enabled bool) {
	l.debugOverlay = enabled
}

// Update advances the fade-in by dt seconds once the field is visible.
func (l *Layer) Update(dt float32) {
	if !l.field.Visible() {
		return
	}
	if l.fade == nil {
		cfg := l.field.Config()
		l.fade = NewFade(cfg.Opacity, cfg.FadeDuration, ease.InOutQuad)
	}
	l.alpha = l.fade.Update(dt)
}

// Draw paints the field onto target.
func (l *Layer) Draw(target *ebiten.Image) {
	if l.drawField(target) || l.debugOverlay {
		l.drawDebug(target)
	}
	l.flushScreenshots(target)
}

func (l *Layer) drawField(target *ebiten.Image) bool {
	if !l.field.Visible() {
		return false
	}
	w, h := l.field.Size()
	if w <= 0 || h <= 0 {
		return false
	}
	l.buf = ensureImage(l.buf, w, h)
	l.buf.Clear()
	if !l.field.Draw(ebitenCanvas{dst: l.buf}) {
		return false
	}
	l.applyMask(w, h)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleAlpha(float32(l.alpha))
	op.Blend = l.field.Blend().EbitenBlend()
	target.DrawImage(l.buf, &op)
	return true
}

// ensureImage returns img if it is already w x h, or a fresh image otherwise.
func ensureImage(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}

// gradientKey is the part of a Mask that shapes its gradient image. The
// origin is applied with a translation when compositing.
type gradientKey struct {
	inner, outer             float64
	midOpacity, outerOpacity float64
}

func gradientKeyOf(m Mask) gradientKey {
	return gradientKey{inner: m.Inner, outer: m.Outer, midOpacity: m.MidOpacity, outerOpacity: m.OuterOpacity}
}

// applyMask clips the buffer to the mask's alpha. The surface-sized mask is
// filled with the outer opacity and the cached gradient is copied over it at
// the origin. The gradient image is only rebuilt when its radii or stops
// change.
func (l *Layer) applyMask(w, h int) {
	m := l.field.Mask()
	if key := gradientKeyOf(m); l.maskImg == nil || key != l.maskKey {
		if l.maskImg != nil {
			l.maskImg.Deallocate()
		}
		l.maskImg = ebiten.NewImageFromImage(buildMaskImage(m))
		l.maskKey = key
	}
	l.maskBuf = ensureImage(l.maskBuf, w, h)
	l.maskBuf.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: uint8(m.OuterOpacity*255 + 0.5)})

	c := gradientCenter(m)
	var gop ebiten.DrawImageOptions
	gop.GeoM.Translate(m.Origin.X-c, m.Origin.Y-c)
	gop.Blend = ebiten.BlendCopy
	l.maskBuf.DrawImage(l.maskImg, &gop)

	var op ebiten.DrawImageOptions
	op.Blend = BlendMask.EbitenBlend()
	l.buf.DrawImage(l.maskBuf, &op)
}

// Dispose deallocates the layer's images. The layer should not be used
// after calling Dispose.
func (l *Layer) Dispose() {
	if l.buf != nil {
		l.buf.Deallocate()
		l.buf = nil
	}
	if l.maskImg != nil {
		l.maskImg.Deallocate()
		l.maskImg = nil
	}
	if l.maskBuf != nil {
		l.maskBuf.Deallocate()
		l.maskBuf = nil
	}
}

// gradientCenter is the pixel position of the origin inside the gradient
// image built for m.
func gradientCenter(m Mask) float64 {
	return float64(gradientSize(m)) / 2
}

// gradientSize leaves a one-pixel border past the outer radius.
func gradientSize(m Mask) int {
	return max(1, int(math.Ceil(2*m.Outer))+2)
}

// buildMaskImage rasterizes the gradient of m into a white square centered on
// the origin. Corners past the outer radius carry the outer opacity.
func buildMaskImage(m Mask) *image.NRGBA {
	size := gradientSize(m)
	c := gradientCenter(m)
	m.Origin = Vec2{X: c, Y: c}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := m.Alpha(float64(x)+0.5, float64(y)+0.5)
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)})
		}
	}
	return img
}

// ebitenCanvas adapts an ebiten image to Canvas.
type ebitenCanvas struct {
	dst *ebiten.Image
}

func (c ebitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1),
		float32(width), col.toRGBA(), true)
}

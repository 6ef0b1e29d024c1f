package hyperspace

import "math"

// maskMidStop is the gradient position, between the inner and outer radius,
// at which the mask reaches MidOpacity.
const maskMidStop = 0.55

// Mask is a radial transparency gradient centered on the origin. It is a
// plain comparable value: a changed origin or surface size produces a new
// Mask, and renderers rebuild their cached mask image when the value differs.
type Mask struct {
	Origin       Vec2
	Inner, Outer float64 // radii in device pixels
	MidOpacity   float64
	OuterOpacity float64
}

// NewMask derives the mask for a w x h device-pixel surface.
// centerZero and centerFull are fractions of the smaller dimension.
func NewMask(origin Vec2, w, h, centerZero, centerFull, midOpacity, outerOpacity float64) Mask {
	minDim := math.Min(w, h)
	inner := math.Max(0, minDim*centerZero)
	outer := math.Max(inner+1, minDim*centerFull)
	return Mask{
		Origin:       origin,
		Inner:        inner,
		Outer:        outer,
		MidOpacity:   clamp01(midOpacity),
		OuterOpacity: clamp01(outerOpacity),
	}
}

// Alpha returns the mask opacity at device pixel (x, y).
func (m Mask) Alpha(x, y float64) float64 {
	d := math.Hypot(x-m.Origin.X, y-m.Origin.Y)
	if d <= m.Inner {
		return 0
	}
	if d >= m.Outer {
		return m.OuterOpacity
	}
	t := (d - m.Inner) / (m.Outer - m.Inner)
	if t <= maskMidStop {
		return lerp(0, m.MidOpacity, t/maskMidStop)
	}
	return lerp(m.MidOpacity, m.OuterOpacity, (t-maskMidStop)/(1-maskMidStop))
}

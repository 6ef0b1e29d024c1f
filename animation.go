package hyperspace

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a layer's opacity from 0 to a target after the reveal.
// Call Update(dt) each frame; Done is set once the target is reached.
type Fade struct {
	tween *gween.Tween
	value float64
	Done  bool
}

// NewFade creates a fade to the given opacity over duration using fn.
// A non-positive duration completes immediately.
func NewFade(to float64, duration time.Duration, fn ease.TweenFunc) *Fade {
	to = clamp01(to)
	if duration <= 0 {
		return &Fade{value: to, Done: true}
	}
	if fn == nil {
		fn = ease.InOutQuad
	}
	return &Fade{tween: gween.New(0, float32(to), float32(duration.Seconds()), fn)}
}

// Update advances the fade by dt seconds and returns the current opacity.
func (f *Fade) Update(dt float32) float64 {
	if f.Done {
		return f.value
	}
	val, finished := f.tween.Update(dt)
	f.value = float64(val)
	f.Done = finished
	return f.value
}

// Value returns the current opacity.
func (f *Fade) Value() float64 {
	return f.value
}

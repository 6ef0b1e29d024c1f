package hyperspace

import (
	"math"
	"math/rand/v2"
	"time"
)

// maxFrameDelta caps the delta fed to one simulation step.
const maxFrameDelta = 50 * time.Millisecond

// resolveDeviceScale returns a usable device-pixel ratio, falling back to 1
// for missing or nonsensical values.
func resolveDeviceScale(dpr float64) float64 {
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		return 1
	}
	return dpr
}

// clampDelta converts a wall-clock delta to seconds, clamped to [0, maxFrameDelta].
func clampDelta(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d.Seconds()
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Random returns a random float64 in [Min, Max).
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

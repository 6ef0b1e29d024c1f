package hyperspace

import "math"

const (
	// reducedDepth scales depth-derived speed when ReduceMotion is set.
	reducedDepth = 0.35
	// depthDecay is how much z drops per simulated second.
	depthDecay = 0.25
	// streakScale converts one frame's displacement into tail length.
	streakScale = 2.5
)

// FrameStats summarizes one simulation step for the reveal decision.
type FrameStats struct {
	Count  int // stars stepped
	Spread int // stars at or beyond the reveal radius

	// Bounding box of star positions after the step, in device pixels.
	MinX, MaxX, MinY, MaxY float64
}

// SpreadRatio returns Spread/Count, or 0 for an empty pool.
func (s FrameStats) SpreadRatio() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Spread) / float64(s.Count)
}

// Covers reports whether the bounding box reaches all four edges of a
// w x h surface within margin.
func (s FrameStats) Covers(w, h, margin float64) bool {
	if s.Count == 0 {
		return false
	}
	return s.MinX <= margin && s.MinY <= margin &&
		s.MaxX >= w-margin && s.MaxY >= h-margin
}

// stepScale returns the time dilation for the current phase.
func (f *Field) stepScale() float64 {
	if f.reveal.hidden() {
		return f.cfg.PreSimBoost
	}
	return 1
}

// step advances every star by dt seconds, records each star's streak tail,
// and respawns stars that leave the surface plus margin. Stats are taken
// before the respawn so stars crossing an edge count towards coverage.
func (f *Field) step(dt float64) FrameStats {
	scale := f.stepScale()
	dtScaled := dt * scale
	depthFactor := 1.0
	if f.cfg.ReduceMotion {
		depthFactor = reducedDepth
	}

	w, h := float64(f.tracker.w), float64(f.tracker.h)
	margin := f.tracker.margin()
	origin := f.tracker.origin
	revealRadius := f.tracker.minDim() * f.cfg.RevealRadiusFraction
	sp := f.spawnParams()
	tailFactor := streakScale * f.cfg.Streak

	stats := FrameStats{
		Count: len(f.pool.stars),
		MinX:  math.Inf(1),
		MaxX:  math.Inf(-1),
		MinY:  math.Inf(1),
		MaxY:  math.Inf(-1),
	}
	if cap(f.tails) < len(f.pool.stars) {
		f.tails = make([]Vec2, len(f.pool.stars))
	}
	f.tails = f.tails[:len(f.pool.stars)]

	for i := range f.pool.stars {
		s := &f.pool.stars[i]
		depth := (1 - s.z) * depthFactor
		pxPerSec := f.cfg.Speed * (0.4 + depth) * s.sp * scale
		dx := s.vx * pxPerSec * dt
		dy := s.vy * pxPerSec * dt

		tl := tailFactor * s.len
		f.tails[i] = Vec2{X: s.x - dx*tl, Y: s.y - dy*tl}

		s.x += dx
		s.y += dy
		s.z = math.Max(0, s.z-dtScaled*depthDecay)

		stats.MinX = math.Min(stats.MinX, s.x)
		stats.MaxX = math.Max(stats.MaxX, s.x)
		stats.MinY = math.Min(stats.MinY, s.y)
		stats.MaxY = math.Max(stats.MaxY, s.y)
		if math.Hypot(s.x-origin.X, s.y-origin.Y) >= revealRadius {
			stats.Spread++
		}

		if s.x < -margin || s.x > w+margin || s.y < -margin || s.y > h+margin {
			f.pool.respawn(i, sp)
			f.tails[i] = Vec2{X: s.x, Y: s.y}
		}
	}
	return stats
}

package hyperspace

import (
	"math"
	"math/rand/v2"
)

const (
	// minPoolSize is the floor on star count regardless of surface area.
	minPoolSize = 60
	// spawnReach is the outer spawn radius as a fraction of the smaller dimension.
	spawnReach = 0.55
	// spawnBias is the power-law exponent that packs spawns towards the inner radius.
	spawnBias = 1.8
	// minDirection is the smallest offset from the origin treated as a direction.
	minDirection = 1e-4
)

var (
	spawnDepth  = Range{0.08, 1}
	spawnSpeed  = Range{0.75, 1.4}
	spawnLength = Range{0.5, 1.0}
)

// star holds per-star simulation state. Unexported; managed by pool and
// overwritten in place on respawn.
type star struct {
	x, y   float64
	z      float64 // depth: 0 nearest/fastest, 1 farthest/slowest
	vx, vy float64 // unit direction away from the origin at spawn
	sp     float64 // speed multiplier
	len    float64 // streak length multiplier
	c0, c1 int     // palette endpoints
	phase  float64 // offset into the color cycle, [0, 1)
}

// spawnParams is the geometry a star is spawned against. Computed once per
// frame (or per resize) and passed by value.
type spawnParams struct {
	cx, cy  float64 // origin in device pixels
	w, h    float64 // surface size in device pixels
	margin  float64 // out-of-bounds allowance in device pixels
	minFrac float64 // spawn radius floor as a fraction of min(w, h)
	colors  int     // palette size
}

// pool is a fixed-capacity collection of stars addressed by index.
type pool struct {
	stars []star
}

// targetPoolSize returns the star count for a w x h device-pixel surface.
func targetPoolSize(w, h int, density float64) int {
	if w <= 0 || h <= 0 {
		return minPoolSize
	}
	n := int(math.Floor(float64(w) * float64(h) / 1e6 * density))
	return max(minPoolSize, n)
}

// Len returns the number of stars in the pool.
func (p *pool) Len() int {
	return len(p.stars)
}

// resize grows the pool to n by spawning new stars or shrinks it by
// truncating from the end. Existing stars are left untouched.
func (p *pool) resize(n int, sp spawnParams) {
	if n < 0 {
		n = 0
	}
	cur := len(p.stars)
	if n <= cur {
		p.stars = p.stars[:n]
		return
	}
	if n > cap(p.stars) {
		grown := make([]star, cur, n)
		copy(grown, p.stars)
		p.stars = grown
	}
	p.stars = p.stars[:n]
	for i := cur; i < n; i++ {
		spawn(&p.stars[i], sp)
	}
}

// respawn overwrites the star at index i with a freshly spawned one.
func (p *pool) respawn(i int, sp spawnParams) {
	spawn(&p.stars[i], sp)
}

// spawn initializes s at a random angle around the origin.
func spawn(s *star, sp spawnParams) {
	theta := rand.Float64() * 2 * math.Pi
	cos, sin := math.Cos(theta), math.Sin(theta)

	minDim := math.Min(sp.w, sp.h)
	rBase := math.Max(0, minDim*sp.minFrac)
	rMax := math.Max(rBase, minDim*spawnReach)
	r := rBase + math.Pow(rand.Float64(), spawnBias)*(rMax-rBase)

	// Keep the spawn inside the respawn margin; the direction is taken from
	// the clamped point so the trajectory still runs straight from the origin.
	s.x = clampRange(sp.cx+r*cos, -sp.margin, sp.w+sp.margin)
	s.y = clampRange(sp.cy+r*sin, -sp.margin, sp.h+sp.margin)
	dx, dy := s.x-sp.cx, s.y-sp.cy
	if mag := math.Hypot(dx, dy); mag > minDirection {
		s.vx, s.vy = dx/mag, dy/mag
	} else {
		s.vx, s.vy = cos, sin
	}

	s.z = spawnDepth.Random()
	s.sp = spawnSpeed.Random()
	s.len = spawnLength.Random()
	s.phase = rand.Float64()
	s.c0, s.c1 = pickEndpoints(sp.colors)
}

// pickEndpoints chooses two palette indices, distinct whenever possible.
func pickEndpoints(n int) (int, int) {
	if n <= 1 {
		return 0, 0
	}
	c0 := rand.IntN(n)
	c1 := rand.IntN(n)
	if c1 == c0 {
		c1 = (c0 + 1) % n
	}
	return c0, c1
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

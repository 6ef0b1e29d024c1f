package hyperspace

import (
	"math"
	"time"
)

// cycleRate is how many full color cycles a star makes per second of
// visible time.
const cycleRate = 0.08

// colorCycler picks per-star stroke colors from a themed palette.
type colorCycler struct {
	palette *Palette
	intro   time.Duration

	roles  bool // all four roles resolved
	orange int
	blues  [3]int
}

func newColorCycler(p *Palette, r RoleResolver, intro time.Duration) colorCycler {
	c := colorCycler{palette: p, intro: intro}
	if r == nil || p.Len() < 4 {
		return c
	}
	var ok [4]bool
	c.orange, ok[0] = r.ResolveRole(RoleError)
	c.blues[0], ok[1] = r.ResolveRole(RolePrimary)
	c.blues[1], ok[2] = r.ResolveRole(RoleSecondary)
	c.blues[2], ok[3] = r.ResolveRole(RoleTertiary)
	c.roles = ok[0] && ok[1] && ok[2] && ok[3]
	return c
}

// endpoints returns the two palette indices a star blends between.
func (c *colorCycler) endpoints(s *star, sinceVisible time.Duration) (int, int) {
	if !c.roles {
		return s.c0, s.c1
	}
	if sinceVisible < c.intro {
		return c.orange, c.blues[0]
	}
	i := int(s.phase*3) % 3
	return c.blues[i], c.blues[(i+1)%3]
}

// strokeColor returns the color of s at sinceVisible after the reveal.
func (c *colorCycler) strokeColor(s *star, sinceVisible time.Duration) Color {
	cycle := math.Mod(sinceVisible.Seconds()*cycleRate+s.phase, 1)
	if cycle < 0 {
		cycle += 1
	}
	a, b := c.endpoints(s, sinceVisible)
	mixed := c.palette.at(a).BlendRgb(c.palette.at(b), cycle)
	return Color{
		R: mixed.R,
		G: mixed.G,
		B: mixed.B,
		A: 0.25 + 0.6*(1-s.z),
	}
}

package hyperspace

import "time"

// Config controls how a starfield is sized, moves, is masked and reveals
// itself. Start from DefaultConfig and override what you need.
type Config struct {
	// Density is the number of stars per megapixel of surface area.
	Density float64
	// Speed is the base speed in device pixels per second at mid-depth.
	Speed float64
	// Streak is the streak-tail length multiplier in [0, 1].
	Streak float64
	// Opacity is the layer opacity once fully faded in.
	Opacity float64
	// ReduceMotion scales depth-derived speed down to roughly a third.
	ReduceMotion bool

	// CenterZero and CenterFull are the mask inner and outer radius
	// fractions of the surface's smaller dimension.
	CenterZero float64
	CenterFull float64
	// MidOpacity and OuterOpacity are the mask gradient stop opacities.
	MidOpacity   float64
	OuterOpacity float64

	// HoldUntilAnchor suppresses painting until the anchor has been measured
	// with a non-zero size. Ignored when no anchor is given.
	HoldUntilAnchor bool
	// StartDelay is the minimum time between arming and revealing.
	StartDelay time.Duration
	// FadeDuration is the fade-in applied by the renderer after the reveal.
	FadeDuration time.Duration
	// PreSimBoost multiplies simulation time while the field is hidden.
	PreSimBoost float64

	// RevealRadiusFraction is the radius, as a fraction of the smaller
	// dimension, beyond which a star counts towards the spread ratio.
	RevealRadiusFraction float64
	// MinRevealSpreadRatio is the fraction of stars that must lie beyond
	// RevealRadiusFraction before the field may be revealed.
	MinRevealSpreadRatio float64
	// HiddenSpawnMinRadiusFraction is the spawn-radius floor while hidden.
	// Zero means RevealRadiusFraction.
	HiddenSpawnMinRadiusFraction float64
	// SpawnMinRadiusFraction is the spawn-radius floor once visible.
	SpawnMinRadiusFraction float64

	// Palette supplies stroke colors. Nil selects DefaultPalette(Dark).
	Palette *Palette
	// Dark selects the dark theme: additive compositing and the dark palette.
	Dark bool

	// Debug enables per-frame stats on stderr.
	Debug bool
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Density:              130,
		Speed:                420,
		Streak:               0.6,
		Opacity:              0.9,
		CenterZero:           0.04,
		CenterFull:           0.36,
		MidOpacity:           0.55,
		OuterOpacity:         1,
		HoldUntilAnchor:      true,
		StartDelay:           450 * time.Millisecond,
		FadeDuration:         900 * time.Millisecond,
		PreSimBoost:          4,
		RevealRadiusFraction: 0.3,
		MinRevealSpreadRatio: 0.55,

		SpawnMinRadiusFraction: 0.03,
	}
}

// sanitized returns a copy with every positive-only field forced into range.
func (c Config) sanitized() Config {
	def := DefaultConfig()
	if !(c.Density > 0) {
		c.Density = def.Density
	}
	if !(c.Speed > 0) {
		c.Speed = def.Speed
	}
	c.Streak = clamp01(c.Streak)
	c.Opacity = clamp01(c.Opacity)
	c.MidOpacity = clamp01(c.MidOpacity)
	c.OuterOpacity = clamp01(c.OuterOpacity)
	if c.CenterZero < 0 {
		c.CenterZero = 0
	}
	if c.StartDelay < 0 {
		c.StartDelay = 0
	}
	if c.FadeDuration < 0 {
		c.FadeDuration = 0
	}
	if !(c.PreSimBoost > 0) {
		c.PreSimBoost = def.PreSimBoost
	}
	if !(c.RevealRadiusFraction > 0) {
		c.RevealRadiusFraction = def.RevealRadiusFraction
	}
	c.MinRevealSpreadRatio = clamp01(c.MinRevealSpreadRatio)
	if !(c.HiddenSpawnMinRadiusFraction > 0) {
		c.HiddenSpawnMinRadiusFraction = c.RevealRadiusFraction
	}
	if c.SpawnMinRadiusFraction < 0 {
		c.SpawnMinRadiusFraction = 0
	}
	return c
}

// introWindow is how long after the reveal the orange-to-blue intro colors last.
func (c Config) introWindow() time.Duration {
	return max(c.FadeDuration+1500*time.Millisecond, 2200*time.Millisecond)
}

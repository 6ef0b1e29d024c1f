package hyperspace

import "time"

// coverageEdge is the edge allowance, as a fraction of the smaller surface
// dimension, within which the star bounding box counts as touching an edge.
const coverageEdge = 0.04

// RevealState is the phase of the one-way reveal.
type RevealState uint8

const (
	RevealWarmingUp RevealState = iota // simulating, waiting for the anchor
	RevealArmed                        // anchor measured, waiting for delay and geometry
	RevealVisible                      // painting; terminal
)

func (s RevealState) String() string {
	switch s {
	case RevealWarmingUp:
		return "warming-up"
	case RevealArmed:
		return "armed"
	case RevealVisible:
		return "visible"
	default:
		return "unknown"
	}
}

// reveal decides when a silently pre-simulated field starts painting.
// The delay is polled once per tick rather than timed, so it cannot elapse
// while ticking is paused.
type reveal struct {
	state      RevealState
	armedAt    time.Duration
	visibleAt  time.Duration
	startDelay time.Duration
	minSpread  float64
}

func newReveal(startDelay time.Duration, minSpread float64) reveal {
	return reveal{
		state:      RevealWarmingUp,
		startDelay: startDelay,
		minSpread:  clamp01(minSpread),
	}
}

// hidden reports whether the field is still pre-simulating.
func (r *reveal) hidden() bool {
	return r.state != RevealVisible
}

// arm moves WarmingUp to Armed. Returns true on the transition.
func (r *reveal) arm(now time.Duration) bool {
	if r.state != RevealWarmingUp {
		return false
	}
	r.state = RevealArmed
	r.armedAt = now
	return true
}

// evaluate checks the Armed to Visible conditions against this frame's
// stats for a w x h device-pixel surface. Returns true on the transition.
func (r *reveal) evaluate(now time.Duration, stats FrameStats, w, h float64) bool {
	if r.state != RevealArmed || w <= 0 || h <= 0 {
		return false
	}
	if now-r.armedAt < r.startDelay {
		return false
	}
	if !stats.Covers(w, h, min(w, h)*coverageEdge) {
		return false
	}
	if stats.SpreadRatio() < r.minSpread {
		return false
	}
	r.state = RevealVisible
	r.visibleAt = now
	return true
}

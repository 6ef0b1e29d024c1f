package hyperspace

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and reveal metrics.
// Only populated when the field is in debug mode.
type debugStats struct {
	stepTime time.Duration
	stats    FrameStats
	covers   bool
	state    RevealState
}

// debugLog prints step timing and reveal inputs to stderr.
func (f *Field) debugLog(ds debugStats) {
	if !f.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[hyperspace] step: %v | stars: %d | spread: %d/%d (%.2f) | coverage: %v | state: %s\n",
		ds.stepTime, ds.stats.Count, ds.stats.Spread, ds.stats.Count, ds.stats.SpreadRatio(),
		ds.covers, ds.state)
}

// debugTransition reports a reveal state change.
func (f *Field) debugTransition(to RevealState, now time.Duration) {
	if !f.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[hyperspace] reveal: %s at %v (armed at %v)\n",
		to, now, f.reveal.armedAt)
}

package hyperspace

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugText formats the overlay lines for the field's current state.
func (l *Layer) debugText() string {
	f := l.field
	st := f.Stats()
	w, h := f.Size()
	return fmt.Sprintf("state: %s\nstars: %d\nspread: %.2f\nsize: %dx%d @%.1fx\nalpha: %.2f",
		f.State(), f.StarCount(), st.SpreadRatio(), w, h, f.DeviceScale(), l.alpha)
}

// drawDebug prints reveal state, pool stats and frame rates in the top-left
// corner of target when the overlay is enabled.
func (l *Layer) drawDebug(target *ebiten.Image) {
	if !l.debugOverlay {
		return
	}
	msg := fmt.Sprintf("%s\nFPS: %.1f\nTPS: %.1f", l.debugText(), ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(target, msg, 8, 8)
}

package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/hyperspace"
)

// cell is one rasterized terminal cell. The brightest stroke wins.
type cell struct {
	glyph rune
	color hyperspace.Color
	lum   float64
}

// Canvas rasterizes streaks into a tcell screen. It implements
// hyperspace.Canvas. Call Begin, draw the field, then Flush.
type Canvas struct {
	screen tcell.Screen
	cells  []cell
	w, h   int
	mask   hyperspace.Mask
	alpha  float64
}

// NewCanvas creates a canvas drawing onto screen.
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen, alpha: 1}
}

// Begin resets the cell buffer to the screen size and sets the mask and
// layer opacity applied to subsequent strokes.
func (c *Canvas) Begin(mask hyperspace.Mask, alpha float64) {
	c.w, c.h = c.screen.Size()
	n := max(0, c.w*c.h)
	if cap(c.cells) < n {
		c.cells = make([]cell, n)
	}
	c.cells = c.cells[:n]
	clear(c.cells)
	c.mask = mask
	c.alpha = alpha
}

// StrokeLine implements hyperspace.Canvas. Width is ignored; a cell is the
// thinnest line a terminal can show.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, col hyperspace.Color) {
	dx, dy := x1-x0, y1-y0
	glyph := glyphFor(dx, dy)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	steps = max(steps, 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := int(math.Floor(x0 + dx*t))
		cy := int(math.Floor(y0 + dy*t))
		if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
			continue
		}
		// Fade towards the tail so the head reads as the bright end.
		lum := col.A * c.alpha * c.mask.Alpha(float64(cx)+0.5, float64(cy)+0.5) * (0.35 + 0.65*t)
		if lum <= 0 {
			continue
		}
		p := &c.cells[cy*c.w+cx]
		if lum > p.lum {
			*p = cell{glyph: glyph, color: col, lum: lum}
		}
	}
}

// Flush writes every lit cell to the screen. Unlit cells are left as they
// are, so the caller clears the screen first.
func (c *Canvas) Flush() {
	for i, p := range c.cells {
		if p.lum <= 0 {
			continue
		}
		fg := tcell.NewRGBColor(channel(p.color.R, p.lum), channel(p.color.G, p.lum), channel(p.color.B, p.lum))
		c.screen.SetContent(i%c.w, i/c.w, p.glyph, nil, tcell.StyleDefault.Foreground(fg))
	}
}

// glyphFor picks a character matching the streak direction. Terminal rows
// are about twice as tall as columns wide, which the slope thresholds allow for.
func glyphFor(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax < 0.25 && ay < 0.25:
		return '.'
	case ax > 2*ay:
		return '-'
	case ay > ax:
		return '|'
	case dx*dy > 0:
		return '\\'
	default:
		return '/'
	}
}

func channel(v, lum float64) int32 {
	return int32(math.Round(math.Min(1, math.Max(0, v*lum)) * 255))
}

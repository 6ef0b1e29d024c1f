// Package term renders a hyperspace starfield into a terminal with tcell.
//
// Each cell is one device pixel. Streaks are rasterized into cells with a
// direction glyph, dimmed by the field's mask and fade-in opacity, and
// composited over the terminal's background.
package term

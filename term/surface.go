package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/hyperspace"
)

// Surface is a tcell screen as a hyperspace.Surface, one cell per device pixel.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Bounds implements hyperspace.Surface.
func (s *Surface) Bounds() hyperspace.Rect {
	w, h := s.screen.Size()
	return hyperspace.Rect{Width: float64(w), Height: float64(h)}
}

// DeviceScale implements hyperspace.Surface.
func (s *Surface) DeviceScale() float64 {
	return 1
}

// Banner is a centered, boxed title. It doubles as the anchor the field
// is centered on.
type Banner struct {
	screen tcell.Screen
	Text   string
	Style  tcell.Style
}

// NewBanner creates a banner on screen.
func NewBanner(screen tcell.Screen, text string) *Banner {
	return &Banner{
		screen: screen,
		Text:   text,
		Style:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// Bounds implements hyperspace.Anchor. An empty text or a screen too small
// for the box reports zero size, which keeps the field warming up.
func (b *Banner) Bounds() hyperspace.Rect {
	sw, sh := b.screen.Size()
	w, h := len([]rune(b.Text))+4, 3
	if b.Text == "" || w > sw || h > sh {
		return hyperspace.Rect{}
	}
	return hyperspace.Rect{
		X:      float64((sw - w) / 2),
		Y:      float64((sh - h) / 2),
		Width:  float64(w),
		Height: float64(h),
	}
}

// Draw paints the box and its text over whatever the field drew.
func (b *Banner) Draw() {
	r := b.Bounds()
	if r.Empty() {
		return
	}
	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := x0+int(r.Width)-1, y0+int(r.Height)-1
	for x := x0; x <= x1; x++ {
		b.screen.SetContent(x, y0, tcell.RuneHLine, nil, b.Style)
		b.screen.SetContent(x, y1, tcell.RuneHLine, nil, b.Style)
		b.screen.SetContent(x, y0+1, ' ', nil, b.Style)
	}
	b.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, b.Style)
	b.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, b.Style)
	b.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, b.Style)
	b.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, b.Style)
	b.screen.SetContent(x0, y0+1, tcell.RuneVLine, nil, b.Style)
	b.screen.SetContent(x1, y0+1, tcell.RuneVLine, nil, b.Style)
	for i, ch := range []rune(b.Text) {
		b.screen.SetContent(x0+2+i, y0+1, ch, nil, b.Style)
	}
}

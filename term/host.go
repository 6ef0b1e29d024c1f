package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/hyperspace"
	"github.com/tanema/gween/ease"
)

// frameInterval is the tick period of the terminal loop (~60 FPS).
const frameInterval = 16 * time.Millisecond

// Options configures the terminal host.
type Options struct {
	// Banner, when non-empty, draws a boxed title the field is centered on.
	Banner string
	// Sink receives the reveal notification.
	Sink hyperspace.RevealSink
	// Quit stops the loop when closed.
	Quit <-chan struct{}
}

// Run opens the terminal, animates a starfield until Esc, Ctrl-C or q, and
// restores the terminal.
func Run(cfg hyperspace.Config, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	return RunOn(screen, cfg, opts)
}

// RunOn animates a starfield on an already initialized screen. Focus loss
// pauses the simulation; resizes re-measure the surface and banner. The
// caller keeps the screen: RunOn stops consuming its events before it returns.
func RunOn(screen tcell.Screen, cfg hyperspace.Config, opts Options) error {
	screen.EnableFocus()
	screen.HideCursor()

	var banner *Banner
	var anchor hyperspace.Anchor
	if opts.Banner != "" {
		banner = NewBanner(screen, opts.Banner)
		anchor = banner
	}

	field := hyperspace.New(NewSurface(screen), anchor, cfg)
	if opts.Sink != nil {
		field.SetRevealSink(opts.Sink)
	}
	queue := hyperspace.NewFrameQueue(nil)
	driver := hyperspace.NewDriver(field, queue)
	driver.Start()
	defer driver.Stop()

	canvas := NewCanvas(screen)
	var fade *hyperspace.Fade

	events := make(chan tcell.Event, 64)
	stopEvents := make(chan struct{})
	eventsDone := make(chan struct{})
	go func() {
		defer close(eventsDone)
		screen.ChannelEvents(events, stopEvents)
	}()
	// The screen outlives RunOn; stop reading its events before returning.
	defer func() {
		close(stopEvents)
		<-eventsDone
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-opts.Quit:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				field.SurfaceChanged()
				field.AnchorChanged()
			case *tcell.EventFocus:
				driver.SetHidden(!ev.Focused)
			}

		case <-ticker.C:
			if driver.Hidden() {
				continue
			}
			queue.Flush()

			screen.Clear()
			if field.Visible() {
				if fade == nil {
					fc := field.Config()
					fade = hyperspace.NewFade(fc.Opacity, fc.FadeDuration, ease.InOutQuad)
				}
				canvas.Begin(field.Mask(), fade.Update(float32(frameInterval.Seconds())))
				field.Draw(canvas)
				canvas.Flush()
			}
			if banner != nil {
				banner.Draw()
			}
			screen.Show()
		}
	}
}

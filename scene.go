package hyperspace

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window host started by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Config is the starfield configuration.
	Config Config
	// Anchor optionally centers the field on an element drawn by the caller.
	// Bounds are in window (logical) pixels.
	Anchor Anchor
	// ClearColor fills the window before the field is composited.
	ClearColor Color
	// ShowDebug enables the stats overlay.
	ShowDebug bool
	// ScreenshotDir overrides the screenshot directory.
	ScreenshotDir string
	// Script optionally drives hide/show/resize/screenshot steps per frame.
	Script *ScriptRunner
	// ExitWhenScriptDone terminates the game loop after the script's last step.
	ExitWhenScriptDone bool
	// Update is called once per tick before the field advances.
	Update func() error
	// Draw is called after the field is composited. scale is the device
	// scale factor mapping logical pixels to screen pixels.
	Draw func(screen *ebiten.Image, scale float64)
	// Sink receives the reveal notification.
	Sink RevealSink
}

// windowSurface is the game window as a Surface.
type windowSurface struct {
	w, h  float64
	scale float64
}

func (s *windowSurface) Bounds() Rect {
	return Rect{Width: s.w, Height: s.h}
}

func (s *windowSurface) DeviceScale() float64 {
	return s.scale
}

// game hosts one field in an Ebitengine window. Window focus stands in for
// document visibility: an unfocused window pauses the driver.
type game struct {
	cfg     RunConfig
	surface *windowSurface
	field   *Field
	layer   *Layer
	queue   *FrameQueue
	driver  *Driver

	scriptHidden bool
}

func newGame(cfg RunConfig) *game {
	surface := &windowSurface{w: float64(cfg.Width), h: float64(cfg.Height), scale: 1}
	field := New(surface, cfg.Anchor, cfg.Config)
	if cfg.Sink != nil {
		field.SetRevealSink(cfg.Sink)
	}
	layer := NewLayer(field)
	layer.SetDebugOverlay(cfg.ShowDebug)
	if cfg.ScreenshotDir != "" {
		layer.ScreenshotDir = cfg.ScreenshotDir
	}
	queue := NewFrameQueue(nil)
	return &game{
		cfg:     cfg,
		surface: surface,
		field:   field,
		layer:   layer,
		queue:   queue,
		driver:  NewDriver(field, queue),
	}
}

// Run opens a window and animates a starfield until the window is closed.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	g := newGame(cfg)
	g.driver.Start()
	defer g.driver.Stop()
	defer g.layer.Dispose()
	return ebiten.RunGame(g)
}

// Update steps the script, applies the hidden signal, pumps one frame and
// advances the fade.
func (g *game) Update() error {
	if g.cfg.Script != nil {
		g.cfg.Script.Step(g)
		if g.cfg.ExitWhenScriptDone && g.cfg.Script.Done() {
			return ebiten.Termination
		}
	}
	g.driver.SetHidden(g.scriptHidden || !ebiten.IsFocused())
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	g.queue.Flush()
	if !g.driver.Hidden() {
		g.layer.Update(float32(1.0 / float64(ebiten.TPS())))
	}
	return nil
}

// Draw clears the window, composites the field and runs the caller's Draw.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())
	g.layer.Draw(screen)
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen, g.surface.scale)
	}
}

// Layout reports the screen in device pixels and feeds size and scale
// changes to the field's surface observation.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := resolveDeviceScale(ebiten.Monitor().DeviceScaleFactor())
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.surface.w || h != g.surface.h || scale != g.surface.scale {
		g.surface.w, g.surface.h, g.surface.scale = w, h, scale
		g.field.SurfaceChanged()
	}
	return int(w * scale), int(h * scale)
}

// SetHidden implements ScriptTarget.
func (g *game) SetHidden(hidden bool) {
	g.scriptHidden = hidden
}

// Resize implements ScriptTarget.
func (g *game) Resize(width, height float64) {
	ebiten.SetWindowSize(int(width), int(height))
}

// Screenshot implements ScriptTarget.
func (g *game) Screenshot(label string) {
	g.layer.Screenshot(label)
}

// Package hyperspace renders a warp-speed starfield: streaks flying radially
// out of a center point, drawn without GPU particle support on top of any
// surface that can stroke lines.
//
// A [Field] owns the star pool, the origin (the surface center, or the center
// of an [Anchor] element), a radial transparency [Mask] and the reveal state.
// The field simulates silently, and faster than real time, until the anchor
// has been measured, a minimum delay has passed and the stars have spread to
// every edge of the surface. Only then does it report itself visible and
// start painting, so the first painted frame already looks fully formed.
//
// # Quick start
//
// The simplest way to see a field is [Run], which opens an Ebitengine window:
//
//	cfg := hyperspace.DefaultConfig()
//	cfg.Dark = true
//	hyperspace.Run(hyperspace.RunConfig{
//		Title: "Hyperspace", Width: 960, Height: 600, Config: cfg,
//	})
//
// For your own game loop, create a field over your surface, drive it with a
// [Driver] on a [Scheduler] (a [FrameQueue] flushed once per tick works), and
// composite it with a [Layer]:
//
//	field := hyperspace.New(surface, anchor, cfg)
//	queue := hyperspace.NewFrameQueue(nil)
//	driver := hyperspace.NewDriver(field, queue)
//	layer := hyperspace.NewLayer(field)
//	driver.Start()
//
//	// Update:
//	driver.SetHidden(!ebiten.IsFocused())
//	queue.Flush()
//	layer.Update(dt)
//
//	// Draw:
//	layer.Draw(screen)
//
// Terminal rendering lives in hyperspace/term and a Donburi bridge for
// reveal events in hyperspace/ecs.
package hyperspace

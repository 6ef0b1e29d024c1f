package hyperspace

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the composited target, taken at the
// end of the next Draw.
func (l *Layer) Screenshot(label string) {
	l.screenshotQueue = append(l.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label. Captures record the
// reveal state in their name so warm-up frames are easy to tell apart from
// painted ones. Failures go to stderr and the frame goes on.
func (l *Layer) flushScreenshots(target *ebiten.Image) {
	if len(l.screenshotQueue) == 0 {
		return
	}
	defer func() { l.screenshotQueue = l.screenshotQueue[:0] }()

	if err := os.MkdirAll(l.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[hyperspace] screenshot: %v\n", err)
		return
	}

	// ReadPixels yields premultiplied RGBA, which is image.RGBA's layout.
	img := image.NewRGBA(target.Bounds())
	target.ReadPixels(img.Pix)

	stamp := time.Now()
	state := l.field.State()
	for _, label := range l.screenshotQueue {
		l.shots++
		path := filepath.Join(l.ScreenshotDir, screenshotName(stamp, l.shots, state, label))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[hyperspace] screenshot: %v\n", err)
		}
	}
}

// screenshotName builds "<time>_<seq>_<state>_<label>.png".
func screenshotName(at time.Time, seq int, state RevealState, label string) string {
	return fmt.Sprintf("%s_%03d_%s_%s.png", at.Format("20060102_150405"), seq, state, sanitizeLabel(label))
}

// writePNG encodes img next to path and renames it into place, so a reader
// never sees a partial file.
func writePNG(path string, img image.Image) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shot-*.png")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if encErr := enc.Encode(tmp, img); encErr != nil {
		return errors.Join(fmt.Errorf("encode %s: %w", path, encErr), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', maps everything
// else to '_', and names blank labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}

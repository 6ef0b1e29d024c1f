package hyperspace

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestFadeReachesTarget(t *testing.T) {
	f := NewFade(0.8, time.Second, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	mid := f.Update(0.5)
	if math.Abs(mid-0.4) > 0.01 {
		t.Errorf("midpoint = %f, want ~0.4", mid)
	}
	if f.Done {
		t.Fatal("Done before the full duration")
	}
	f.Update(0.5)
	if !f.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(f.Value()-0.8) > 0.01 {
		t.Errorf("Value = %f, want ~0.8", f.Value())
	}
	if got := f.Update(0.5); math.Abs(got-0.8) > 0.01 {
		t.Errorf("Update after Done = %f, want ~0.8", got)
	}
}

func TestFadeZeroDuration(t *testing.T) {
	f := NewFade(0.6, 0, nil)
	if !f.Done {
		t.Fatal("zero-duration fade should be done")
	}
	assertNear(t, "Value", f.Update(0.1), 0.6)
}

func TestFadeClampsTarget(t *testing.T) {
	f := NewFade(4, 0, nil)
	assertNear(t, "Value", f.Value(), 1)
}

func TestFadeDefaultEasing(t *testing.T) {
	f := NewFade(1, time.Second, nil)
	f.Update(0.5)
	f.Update(0.5)
	if !f.Done || math.Abs(f.Value()-1) > 0.01 {
		t.Errorf("Value = %f Done = %v, want 1 and done", f.Value(), f.Done)
	}
}

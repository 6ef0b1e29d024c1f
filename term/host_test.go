package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/hyperspace"
)

func runAsync(s tcell.Screen, opts Options) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- RunOn(s, hyperspace.DefaultConfig(), opts)
	}()
	return done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunOn: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunOn did not return")
	}
}

func TestRunOnQuitChannel(t *testing.T) {
	s := newSimScreen(t, 40, 12)
	quit := make(chan struct{})
	done := runAsync(s, Options{Banner: "HI", Quit: quit})

	time.Sleep(50 * time.Millisecond)
	close(quit)
	waitDone(t, done)
}

func TestRunOnQuitKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSimScreen(t, 40, 12)
			done := runAsync(s, Options{})
			s.InjectKey(tt.key, tt.r, tcell.ModNone)
			waitDone(t, done)
		})
	}
}

func TestRunOnDrawsBanner(t *testing.T) {
	s := newSimScreen(t, 40, 11)
	quit := make(chan struct{})
	done := runAsync(s, Options{Banner: "HELLO", Quit: quit})

	time.Sleep(100 * time.Millisecond)
	close(quit)
	waitDone(t, done)

	if r, _, _, _ := s.GetContent(17, 5); r != 'H' {
		t.Errorf("banner cell = %q, want 'H'", r)
	}
}

func TestRunOnReleasesScreenEvents(t *testing.T) {
	s := newSimScreen(t, 40, 12)
	quit := make(chan struct{})
	done := runAsync(s, Options{Quit: quit})

	time.Sleep(50 * time.Millisecond)
	close(quit)
	waitDone(t, done)

	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	got := make(chan rune, 1)
	go func() {
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				got <- ev.Rune()
				return
			}
		}
	}()
	select {
	case r := <-got:
		if r != 'x' {
			t.Errorf("key = %q, want 'x'", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("key injected after RunOn returned never reached the caller")
	}
}

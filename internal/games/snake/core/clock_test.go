package core_test

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

func TestClock(t *testing.T) {
	var c core.Clock
	c.Start(1 * time.Second)
	if got := c.Elapsed(4 * time.Second); got != 3*time.Second {
		t.Errorf("Elapsed = %v, want 3s", got)
	}

	c.Pause(5 * time.Second)
	if got := c.Elapsed(60 * time.Second); got != 4*time.Second {
		t.Errorf("Elapsed while paused = %v, want 4s", got)
	}

	c.Start(10 * time.Second)
	c.Start(11 * time.Second) // no-op while running
	if got := c.Elapsed(12 * time.Second); got != 6*time.Second {
		t.Errorf("Elapsed after resume = %v, want 6s", got)
	}

	c.Reset()
	if c.Running() || c.Elapsed(100*time.Second) != 0 {
		t.Error("Reset should clear the clock")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61*time.Second + 900*time.Millisecond, "01:01"},
		{10 * time.Minute, "10:00"},
		{-time.Second, "00:00"},
	}
	for _, tc := range tests {
		if got := core.FormatElapsed(tc.d); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

package core_test

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

func TestRulesSchedule(t *testing.T) {
	r := core.DefaultRules()

	if r.MaxLevel() != 5 {
		t.Errorf("MaxLevel = %d, want 5", r.MaxLevel())
	}
	r.LevelTargets = []int{3, 5}
	if got := r.LevelTarget(7); got != 5 {
		t.Errorf("LevelTarget past schedule = %d, want last entry 5", got)
	}
	if got := r.LevelTarget(1); got != 3 {
		t.Errorf("LevelTarget(1) = %d, want 3", got)
	}

	tests := []struct {
		level  int
		effect bool
		want   time.Duration
	}{
		{1, false, 120 * time.Millisecond},
		{2, false, 114 * time.Millisecond},
		{1, true, 240 * time.Millisecond},
		{100, false, 40 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := r.TickInterval(tc.level, tc.effect); got != tc.want {
			t.Errorf("TickInterval(%d, %v) = %v, want %v", tc.level, tc.effect, got, tc.want)
		}
	}

	if got := r.AppleWanderInterval(1, core.Sequence(0.5)); got != 2*time.Second {
		t.Errorf("AppleWanderInterval with zero jitter = %v, want 2s", got)
	}
	lo := r.AppleWanderInterval(9, core.Sequence(0))
	hi := r.AppleWanderInterval(9, core.Sequence(0.999))
	if lo < 150*time.Millisecond || hi > 250*time.Millisecond {
		t.Errorf("jittered interval out of range: %v..%v", lo, hi)
	}

	if d := r.RespawnDelay(core.Sequence(0)); d != r.RespawnMin {
		t.Errorf("RespawnDelay(0) = %v, want %v", d, r.RespawnMin)
	}
}

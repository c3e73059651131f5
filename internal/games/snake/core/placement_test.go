package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

func seeded(seed int64) core.Rand {
	return rand.New(rand.NewSource(seed)).Float64
}

func tinyRules(cols, rows int) core.Rules {
	r := core.DefaultRules()
	r.Grid = core.Grid{Cols: cols, Rows: rows}
	return r
}

func TestPlaceFoodAvoidsOccupiedCells(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	s := running(startSnake(), core.DirRight)
	s.Worms = []core.Worm{core.NewWorm(core.C(3, 3), core.DirRight, 2)}
	s.Tunnels = []core.Cell{core.C(4, 15), core.C(20, 15)}
	s.GoldenApple, s.HasGoldenApple = core.C(6, 6), true

	rng := seeded(7)
	for i := 0; i < 200; i++ {
		c, ok := e.PlaceFood(s, rng)
		if !ok {
			t.Fatal("PlaceFood failed on a mostly empty board")
		}
		if core.Occupied(s, c) {
			t.Fatalf("PlaceFood returned occupied cell %v", c)
		}
		if !e.Rules().Grid.InBounds(c) {
			t.Fatalf("PlaceFood returned out-of-bounds cell %v", c)
		}
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	e := core.NewEngine(tinyRules(2, 1))
	s := running([]core.Cell{core.C(0, 0), core.C(1, 0)}, core.DirLeft)

	if c, ok := e.PlaceFood(s, core.Sequence(0.5)); ok {
		t.Errorf("PlaceFood on a full board returned %v", c)
	}
	if c, ok := e.PlaceGoldenApple(s, core.Sequence(0.5)); ok {
		t.Errorf("PlaceGoldenApple on a full board returned %v", c)
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	e := core.NewEngine(tinyRules(3, 1))
	s := running([]core.Cell{core.C(0, 0), core.C(1, 0)}, core.DirLeft)

	for _, v := range []float64{0, 0.5, 0.99} {
		c, ok := e.PlaceFood(s, core.Sequence(v))
		if !ok || c != core.C(2, 0) {
			t.Errorf("PlaceFood(%v) = %v, %v; want (2,0)", v, c, ok)
		}
	}
}

func TestPlaceTunnelPairRespectsDistanceAndBuffer(t *testing.T) {
	r := core.DefaultRules()
	e := core.NewEngine(r)
	s := running(startSnake(), core.DirRight)
	s.Apples = []core.Cell{core.C(15, 5)}

	for seed := int64(1); seed <= 20; seed++ {
		pair, ok := e.PlaceTunnelPair(s, seeded(seed))
		if !ok {
			t.Fatalf("seed %d: PlaceTunnelPair failed on the default board", seed)
		}
		if len(pair) != 2 {
			t.Fatalf("seed %d: got %d endpoints", seed, len(pair))
		}
		if d := pair[0].Distance(pair[1]); d < r.TunnelMinDistance {
			t.Errorf("seed %d: endpoints %v are %.2f apart, want >= %.0f", seed, pair, d, r.TunnelMinDistance)
		}
		for _, c := range pair {
			if c.X < r.TunnelEdgeBuffer || c.X >= r.Grid.Cols-r.TunnelEdgeBuffer ||
				c.Y < r.TunnelEdgeBuffer || c.Y >= r.Grid.Rows-r.TunnelEdgeBuffer {
				t.Errorf("seed %d: endpoint %v inside the edge buffer", seed, c)
			}
			if core.Occupied(s, c) {
				t.Errorf("seed %d: endpoint %v is occupied", seed, c)
			}
		}
	}
}

func TestPlaceTunnelPairImpossible(t *testing.T) {
	// A 2x2 sampling window cannot hold two cells 8 apart.
	e := core.NewEngine(tinyRules(6, 6))
	s := running([]core.Cell{core.C(0, 0)}, core.DirRight)

	if pair, ok := e.PlaceTunnelPair(s, seeded(3)); ok || pair != nil {
		t.Errorf("PlaceTunnelPair = %v, %v; want nil, false", pair, ok)
	}
}

func TestSpawnWorm(t *testing.T) {
	e := core.NewEngine(tinyRules(3, 1))
	s := running([]core.Cell{core.C(0, 0)}, core.DirDown)

	w, ok := e.SpawnWorm(s, core.Sequence(0))
	if !ok {
		t.Fatal("SpawnWorm failed with room for one worm")
	}
	if w.Length != 2 {
		t.Errorf("Length = %d, want 2", w.Length)
	}
	for _, c := range w.Body() {
		if c == core.C(0, 0) || !e.Rules().Grid.InBounds(c) {
			t.Errorf("worm body %v overlaps the snake or leaves the grid", w.Body())
		}
	}

	full := core.NewEngine(tinyRules(2, 1))
	if w, ok := full.SpawnWorm(s, core.Sequence(0)); ok {
		t.Errorf("SpawnWorm on a crowded board returned %v", w)
	}
}

func TestSpawnWormNear(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	eater := core.NewWorm(core.C(5, 5), core.DirRight, 2)
	s := running(startSnake(), core.DirRight)
	s.Worms = []core.Worm{eater}

	for _, v := range []float64{0, 0.3, 0.7, 0.99} {
		w, ok := e.SpawnWormNear(s, eater, core.Sequence(v))
		if !ok {
			t.Fatalf("SpawnWormNear(%v) failed", v)
		}
		if w.Length != 2 {
			t.Errorf("Length = %d, want 2", w.Length)
		}
		if eater.Head.Step(w.Dir).Step(w.Dir) != w.Head {
			t.Errorf("spawned head %v is not two cells from %v facing %s", w.Head, eater.Head, w.Dir)
		}
		for _, c := range w.Body() {
			if eater.Occupies(c) {
				t.Errorf("spawned worm %v overlaps the eater", w.Body())
			}
		}
	}
}

func TestSpawnWormNearCrowded(t *testing.T) {
	// On a 5x1 strip only the two cells between eater and snake are free.
	e := core.NewEngine(tinyRules(5, 1))
	eater := core.NewWorm(core.C(1, 0), core.DirRight, 2)
	s := running([]core.Cell{core.C(4, 0)}, core.DirLeft)
	s.Worms = []core.Worm{eater}

	w, ok := e.SpawnWormNear(s, eater, core.Sequence(0))
	if !ok {
		t.Fatal("SpawnWormNear failed with room for one worm")
	}
	for _, c := range w.Body() {
		if c != core.C(2, 0) && c != core.C(3, 0) {
			t.Errorf("spawned worm %v outside the free cells", w.Body())
		}
	}
}

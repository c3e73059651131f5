package core

// Placement functions return ok=false when no cell qualifies. That is a
// normal outcome on a crowded board; callers keep the prior state.

// freeCells returns every in-bounds cell for which taken is false.
func (e *Engine) freeCells(taken func(Cell) bool) []Cell {
	var free []Cell
	for _, c := range e.rules.Grid.Cells() {
		if !taken(c) {
			free = append(free, c)
		}
	}
	return free
}

// PlaceFood picks a uniformly random cell free of snake, worms, apples,
// tunnels and the golden apple.
func (e *Engine) PlaceFood(s State, rng Rand) (Cell, bool) {
	free := e.freeCells(func(c Cell) bool { return Occupied(s, c) })
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.pick(len(free))], true
}

// PlaceGoldenApple picks a cell like PlaceFood, except that the current
// golden apple position does not exclude itself.
func (e *Engine) PlaceGoldenApple(s State, rng Rand) (Cell, bool) {
	free := e.freeCells(func(c Cell) bool {
		return OccupiedBySnake(s, c) ||
			OccupiedByWorm(s, c) ||
			OccupiedByApple(s, c) ||
			OccupiedByTunnel(s, c)
	})
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.pick(len(free))], true
}

// PlaceTunnelPair draws two endpoints by rejection sampling inside the
// edge buffer, at least TunnelMinDistance apart. It gives up after
// TunnelAttempts draws.
func (e *Engine) PlaceTunnelPair(s State, rng Rand) ([]Cell, bool) {
	r := e.rules
	buf := r.TunnelEdgeBuffer
	spanX := r.Grid.Cols - 2*buf
	spanY := r.Grid.Rows - 2*buf
	if spanX <= 0 || spanY <= 0 {
		return nil, false
	}

	// Existing tunnels are about to be replaced, so they do not block.
	probe := s
	probe.Tunnels = nil

	pair := make([]Cell, 0, 2)
	for range r.TunnelAttempts {
		c := Cell{X: buf + rng.pick(spanX), Y: buf + rng.pick(spanY)}
		if Occupied(probe, c) {
			continue
		}
		if len(pair) == 1 && (pair[0] == c || pair[0].Distance(c) < r.TunnelMinDistance) {
			continue
		}
		pair = append(pair, c)
		if len(pair) == 2 {
			return pair, true
		}
	}
	return nil, false
}

// wormFits reports whether w's whole body is in bounds and free.
func (e *Engine) wormFits(s State, w Worm) bool {
	for _, c := range w.Body() {
		if !e.rules.Grid.InBounds(c) ||
			OccupiedBySnake(s, c) ||
			OccupiedByWorm(s, c) ||
			OccupiedByConsumable(s, c) ||
			OccupiedByTunnel(s, c) {
			return false
		}
	}
	return true
}

// SpawnWorm places a new worm of the initial length on a uniformly chosen
// free (head, facing) placement.
func (e *Engine) SpawnWorm(s State, rng Rand) (Worm, bool) {
	var options []Worm
	for _, c := range e.rules.Grid.Cells() {
		for _, d := range Directions {
			w := NewWorm(c, d, e.rules.WormInitialLength)
			if e.wormFits(s, w) {
				options = append(options, w)
			}
		}
	}
	if len(options) == 0 {
		return Worm{}, false
	}
	return options[rng.pick(len(options))], true
}

// SpawnWormNear places a two-cell worm adjacent to eater, trying the four
// directions in random order, and falls back to SpawnWorm.
func (e *Engine) SpawnWormNear(s State, eater Worm, rng Rand) (Worm, bool) {
	dirs := Directions
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.pick(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	for _, d := range dirs {
		w := NewWorm(eater.Head.Step(d).Step(d), d, 2)
		if e.wormFits(s, w) {
			return w, true
		}
	}
	return e.SpawnWorm(s, rng)
}

package core

// Provision (re)places the hazards and consumables a level calls for:
// one outstanding apple, the tunnel pair from TunnelFromLevel (cleared
// below it), and a golden apple when the level offers one that has not
// been placed or used yet. Failed placements are skipped.
func (e *Engine) Provision(s State, rng Rand) State {
	s = e.EnsureApple(s, rng)

	if e.rules.tunnelsAt(s.Level) {
		s.Tunnels = nil
		if pair, ok := e.PlaceTunnelPair(s, rng); ok {
			s.Tunnels = pair
		}
	} else {
		s.Tunnels = nil
	}

	if e.rules.goldenAt(s.Level) && !s.HasGoldenApple && !s.GoldenUsedThisLevel {
		if c, ok := e.PlaceGoldenApple(s, rng); ok {
			s.GoldenApple = c
			s.HasGoldenApple = true
		}
	}
	return s
}

// EnsureApple places an apple if none is outstanding.
func (e *Engine) EnsureApple(s State, rng Rand) State {
	if len(s.Apples) > 0 {
		return s
	}
	if c, ok := e.PlaceFood(s, rng); ok {
		s.Apples = []Cell{c}
	}
	return s
}

// WanderApple drifts every apple one cell to a random free neighbor.
func (e *Engine) WanderApple(s State, rng Rand) State {
	if !s.Active() || len(s.Apples) == 0 {
		return s
	}
	s = s.Clone()
	for i, a := range s.Apples {
		if c, ok := e.wanderTarget(s, a, rng); ok {
			s.Apples[i] = c
		}
	}
	return s
}

// WanderGoldenApple drifts the golden apple one cell to a random free neighbor.
func (e *Engine) WanderGoldenApple(s State, rng Rand) State {
	if !s.Active() || !s.HasGoldenApple {
		return s
	}
	if c, ok := e.wanderTarget(s, s.GoldenApple, rng); ok {
		s.GoldenApple = c
	}
	return s
}

// wanderTarget picks a random free neighbor of from.
func (e *Engine) wanderTarget(s State, from Cell, rng Rand) (Cell, bool) {
	var options []Cell
	for _, n := range e.rules.Grid.Neighbors(from) {
		if !Occupied(s, n) {
			options = append(options, n)
		}
	}
	if len(options) == 0 {
		return Cell{}, false
	}
	return options[rng.pick(len(options))], true
}

package core

import (
	"math"
	"slices"
)

// WormOutcome reports what the worms consumed during one worm tick.
type WormOutcome struct {
	AteApple  bool // The shared apple was eaten; the host should schedule a respawn
	AteGolden bool // The golden apple was eaten; its wander timer is stale
	Spawned   int  // Worms spawned next to a golden-apple eater
}

// MoveWorms advances every worm by one step and resolves what they eat.
// Worms move one after another, each seeing the positions already taken by
// the worms before it.
func (e *Engine) MoveWorms(s State, rng Rand) (State, WormOutcome) {
	var out WormOutcome
	if !s.Active() || len(s.Worms) == 0 {
		return s, out
	}

	next := s.Clone()
	for i := range next.Worms {
		next.Worms[i] = e.stepWorm(next, i, rng)
	}

	if e.rules.Caps.WormGrowth {
		for i, w := range next.Worms {
			if !OccupiedByApple(next, w.Head) {
				continue
			}
			next.Apples = slices.DeleteFunc(next.Apples, func(c Cell) bool { return c == w.Head })
			next.Worms[i] = w.Grown()
			out.AteApple = true
		}
	}

	eaters := len(next.Worms)
	for i := range eaters {
		w := next.Worms[i]
		if !OccupiedByGoldenApple(next, w.Head) {
			continue
		}
		next.HasGoldenApple = false
		next.GoldenUsedThisLevel = true
		out.AteGolden = true
		if spawned, ok := e.SpawnWormNear(next, w, rng); ok {
			next.Worms = append(next.Worms, spawned)
			out.Spawned++
		}
	}

	return next, out
}

// stepWorm picks the next position of worm idx. With no legal move the
// worm stays where it is.
func (e *Engine) stepWorm(s State, idx int, rng Rand) Worm {
	w := s.Worms[idx]
	w.Anim.Phase = math.Mod(w.Anim.Phase+0.5, 1)

	legal := e.legalMoves(s, idx, w)
	if len(legal) == 0 && w.Grow > 0 {
		// No room for the longer body yet: move at the current length and
		// keep the segment owed.
		held := w
		held.Grow = 0
		for _, cand := range e.legalMoves(s, idx, held) {
			cand.Grow = w.Grow
			legal = append(legal, cand)
		}
	}
	if len(legal) == 0 {
		return w
	}

	if target, ok := e.wormTarget(s); ok && rng.chance(e.rules.GreedyChance) {
		slices.SortStableFunc(legal, func(a, b Worm) int {
			return a.Head.Manhattan(target) - b.Head.Manhattan(target)
		})
		return legal[0]
	}
	return legal[rng.pick(len(legal))]
}

// legalMoves returns the placements of worm idx after each legal step.
func (e *Engine) legalMoves(s State, idx int, w Worm) []Worm {
	legal := make([]Worm, 0, 4)
	for _, d := range Directions {
		if cand := w.Moved(d); e.wormCanOccupy(s, idx, cand) {
			legal = append(legal, cand)
		}
	}
	return legal
}

// wormCanOccupy reports whether worm idx may take the candidate placement.
func (e *Engine) wormCanOccupy(s State, idx int, cand Worm) bool {
	for _, c := range cand.Body() {
		if !e.rules.Grid.InBounds(c) ||
			OccupiedBySnake(s, c) ||
			occupiedByOtherWorm(s, idx, c) ||
			OccupiedByTunnel(s, c) {
			return false
		}
	}
	// Worms that cannot eat steer around the apples.
	if !e.rules.Caps.WormGrowth && OccupiedByConsumable(s, cand.Head) {
		return false
	}
	return true
}

// wormTarget returns the cell worms pursue: the golden apple when present,
// otherwise the outstanding apple.
func (e *Engine) wormTarget(s State) (Cell, bool) {
	if !e.rules.Caps.WormGrowth {
		return Cell{}, false
	}
	if s.HasGoldenApple {
		return s.GoldenApple, true
	}
	if len(s.Apples) > 0 {
		return s.Apples[0], true
	}
	return Cell{}, false
}

package core

// Occupancy queries are recomputed from the state's collections on every
// call; nothing is cached.

// OccupiedBySnake reports whether c is a snake cell.
func OccupiedBySnake(s State, c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// OccupiedByWorm reports whether c is a body cell of any worm.
func OccupiedByWorm(s State, c Cell) bool {
	return occupiedByOtherWorm(s, -1, c)
}

// occupiedByOtherWorm is OccupiedByWorm skipping the worm at index skip.
func occupiedByOtherWorm(s State, skip int, c Cell) bool {
	for i, w := range s.Worms {
		if i == skip {
			continue
		}
		if w.Occupies(c) {
			return true
		}
	}
	return false
}

// OccupiedByApple reports whether c holds a red apple.
func OccupiedByApple(s State, c Cell) bool {
	for _, a := range s.Apples {
		if a == c {
			return true
		}
	}
	return false
}

// OccupiedByGoldenApple reports whether c holds the golden apple.
func OccupiedByGoldenApple(s State, c Cell) bool {
	return s.HasGoldenApple && s.GoldenApple == c
}

// OccupiedByConsumable reports whether c holds any apple, golden included.
func OccupiedByConsumable(s State, c Cell) bool {
	return OccupiedByApple(s, c) || OccupiedByGoldenApple(s, c)
}

// OccupiedByTunnel reports whether c is a tunnel endpoint.
func OccupiedByTunnel(s State, c Cell) bool {
	for _, t := range s.Tunnels {
		if t == c {
			return true
		}
	}
	return false
}

// Occupied reports whether c is taken by anything on the board.
func Occupied(s State, c Cell) bool {
	return OccupiedBySnake(s, c) ||
		OccupiedByWorm(s, c) ||
		OccupiedByConsumable(s, c) ||
		OccupiedByTunnel(s, c)
}

// pairedTunnel returns the other endpoint if c is one end of a complete pair.
func pairedTunnel(s State, c Cell) (Cell, bool) {
	if len(s.Tunnels) != 2 {
		return Cell{}, false
	}
	switch c {
	case s.Tunnels[0]:
		return s.Tunnels[1], true
	case s.Tunnels[1]:
		return s.Tunnels[0], true
	}
	return Cell{}, false
}

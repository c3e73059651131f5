package core

// Worm is an autonomous multi-segment hazard.
// Its body is never stored: it is derived from Head, Dir and Length on every
// access, so a worm's cells always agree with its reported length.
type Worm struct {
	Head   Cell
	Dir    Direction
	Length int
	Grow   int // Segments owed, added one per move

	// Anim is render-only and excluded from Equal.
	Anim WormAnim
}

// WormAnim carries cosmetic animation data for a worm.
type WormAnim struct {
	Phase float64
}

// NewWorm creates a worm with the given head, facing and length.
func NewWorm(head Cell, dir Direction, length int) Worm {
	return Worm{Head: head, Dir: dir, Length: max(1, length)}
}

// Body returns the worm's cells, head first, extending opposite to its facing.
func (w Worm) Body() []Cell {
	n := max(1, w.Length)
	back := w.Dir.Opposite()
	cells := make([]Cell, n)
	cells[0] = w.Head
	for i := 1; i < n; i++ {
		cells[i] = cells[i-1].Step(back)
	}
	return cells
}

// Occupies reports whether c is one of the worm's body cells.
func (w Worm) Occupies(c Cell) bool {
	for _, b := range w.Body() {
		if b == c {
			return true
		}
	}
	return false
}

// Moved returns the worm after stepping its head one cell in d.
// One owed segment is added at the tail as it moves.
func (w Worm) Moved(d Direction) Worm {
	w.Head = w.Head.Step(d)
	w.Dir = d
	if w.Grow > 0 {
		w.Length++
		w.Grow--
	}
	return w
}

// Grown returns the worm owing one more segment. The body keeps its cells
// until the next move.
func (w Worm) Grown() Worm {
	w.Grow++
	return w
}

// Equal compares the logical fields of two worms, ignoring animation.
func (w Worm) Equal(other Worm) bool {
	return w.Head == other.Head && w.Dir == other.Dir && w.Length == other.Length && w.Grow == other.Grow
}

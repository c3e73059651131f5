package core

import (
	"slices"
	"time"
)

// NextState computes the state one tick after s.
//
// Inactive states (game over, not running, paused) are returned unchanged.
// Collisions with the wall, the snake itself or a worm end the round by
// setting GameOver; reaching the last level's target sets Win.
func (e *Engine) NextState(s State, requested Direction, rng Rand, now time.Duration) State {
	if s.GameOver || !s.Running || s.Paused {
		return s
	}

	dir := s.Direction
	if requested.Valid() && requested != s.Direction.Opposite() {
		dir = requested
	}

	head := s.Head().Step(dir)
	if !e.rules.Grid.InBounds(head) {
		return fatal(s, dir)
	}

	teleported := false
	if !s.JustTeleported {
		if exit, ok := pairedTunnel(s, head); ok {
			head = exit
			teleported = true
		}
	}

	eats := OccupiedByApple(s, head)

	// The tail vacates this tick unless the snake grows.
	last := len(s.Snake) - 1
	for i, seg := range s.Snake {
		if seg == head && (i != last || eats) {
			return fatal(s, dir)
		}
	}
	if OccupiedByWorm(s, head) {
		return fatal(s, dir)
	}

	next := s.Clone()
	next.Direction = dir
	next.PendingDirection = dir
	next.JustTeleported = teleported

	if OccupiedByGoldenApple(s, head) {
		next.HasGoldenApple = false
		next.GoldenUsedThisLevel = true
		next.EffectUntil = now + e.rules.EffectDuration
	}

	body := make([]Cell, 0, len(s.Snake)+1)
	body = append(body, head)
	body = append(body, s.Snake...)
	if !eats {
		body = body[:len(body)-1]
	}
	next.Snake = body

	if !eats {
		return next
	}

	next.Apples = slices.DeleteFunc(next.Apples, func(c Cell) bool { return c == head })
	next.ApplesEaten++
	next.Score++
	if !e.rules.delayedRespawn() {
		if c, ok := e.PlaceFood(next, rng); ok {
			next.Apples = append(next.Apples, c)
		}
	}
	return e.checkLevel(next, rng)
}

// checkLevel advances the level or wins once the level's target is met.
func (e *Engine) checkLevel(s State, rng Rand) State {
	if s.ApplesEaten < e.rules.LevelTarget(s.Level) {
		return s
	}
	if s.Level >= e.rules.MaxLevel() {
		s.Win = true
		s.Running = false
		return s
	}
	s.Level++
	s.ApplesEaten = 0
	s.GoldenUsedThisLevel = false
	if w, ok := e.SpawnWorm(s, rng); ok {
		s.Worms = append(s.Worms, w)
	}
	return s
}

// fatal ends the round, keeping the body where it was.
func fatal(s State, dir Direction) State {
	s.Direction = dir
	s.PendingDirection = dir
	s.GameOver = true
	s.Running = false
	return s
}

// Events are the observable deltas of one transition.
type Events struct {
	Moved      bool
	Ate        bool
	AteGolden  bool
	Teleported bool
	Died       bool
	Won        bool
	LevelUp    bool
}

// Any reports whether anything happened.
func (ev Events) Any() bool {
	return ev.Moved || ev.Ate || ev.AteGolden || ev.Teleported || ev.Died || ev.Won || ev.LevelUp
}

// Diff derives the events between two consecutive states.
func Diff(prev, next State) Events {
	var ev Events
	if next.GameOver && !prev.GameOver {
		ev.Died = true
		return ev
	}
	ev.Moved = !slices.Equal(prev.Snake, next.Snake)
	ev.Ate = next.Score > prev.Score
	ev.AteGolden = ev.Moved && prev.HasGoldenApple && !next.HasGoldenApple && next.Head() == prev.GoldenApple
	ev.Teleported = ev.Moved && next.JustTeleported
	ev.Won = next.Win && !prev.Win
	ev.LevelUp = next.Level > prev.Level
	return ev
}

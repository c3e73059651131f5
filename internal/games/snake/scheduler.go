package snake

import "time"

// timerID names the game's timers. Due timers fire in this order within a frame.
type timerID int

const (
	timerMove timerID = iota
	timerWorms
	timerAppleWander
	timerGoldenWander
	timerRespawn
	timerCount
)

var timerNames = [timerCount]string{"move", "worms", "apple_wander", "golden_wander", "respawn"}

func (id timerID) String() string {
	if id < 0 || id >= timerCount {
		return "unknown"
	}
	return timerNames[id]
}

type timer struct {
	due   time.Duration
	armed bool
}

// scheduler runs cancellable timers on a virtual clock that only advances
// when the game says so. A fired timer is disarmed; its handler decides
// whether to arm it again.
type scheduler struct {
	now    time.Duration
	timers [timerCount]timer
}

// advance moves the clock forward.
func (s *scheduler) advance(d time.Duration) {
	s.now += d
}

// arm (re)schedules a timer to fire after d from now.
func (s *scheduler) arm(id timerID, d time.Duration) {
	s.timers[id] = timer{due: s.now + d, armed: true}
}

// repeat schedules a timer one period after its previous due time, so
// periodic timers do not drift with frame granularity. A timer that has
// fallen more than a period behind fires on the next frame instead of
// bursting.
func (s *scheduler) repeat(id timerID, d time.Duration) {
	t := s.timers[id]
	s.timers[id] = timer{due: max(t.due+d, s.now), armed: true}
}

// cancel disarms a timer. Cancelling a disarmed timer is a no-op.
func (s *scheduler) cancel(id timerID) {
	s.timers[id].armed = false
}

// armed reports whether a timer is scheduled.
func (s *scheduler) armed(id timerID) bool {
	return s.timers[id].armed
}

// remaining returns the time until a timer fires, or zero when disarmed.
func (s *scheduler) remaining(id timerID) time.Duration {
	t := s.timers[id]
	if !t.armed || t.due <= s.now {
		return 0
	}
	return t.due - s.now
}

// fire reports whether a timer is due and, if so, disarms it.
func (s *scheduler) fire(id timerID) bool {
	t := s.timers[id]
	if !t.armed || t.due > s.now {
		return false
	}
	s.timers[id].armed = false
	return true
}

// reset clears the clock and every timer.
func (s *scheduler) reset() {
	*s = scheduler{}
}

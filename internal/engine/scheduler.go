package engine

import "time"

// Scheduler turns elapsed wall time into drop and level ticks for a session.
// Time only accumulates while the session is Playing, so a pause keeps the
// partial progress toward both ticks. The drop timer is rearmed whenever the
// level changes, and both timers restart when a new game begins.
type Scheduler struct {
	session *Session

	dropElapsed  time.Duration
	levelElapsed time.Duration
	epoch        uint64
	level        int
}

// NewScheduler binds a scheduler to a session.
func NewScheduler(s *Session) *Scheduler {
	return &Scheduler{session: s, epoch: s.Epoch(), level: s.Level()}
}

// Advance feeds dt of elapsed time and fires every tick that fell due, in
// time order. It returns the number of drop ticks fired.
func (sc *Scheduler) Advance(dt time.Duration) int {
	s := sc.session
	if s.Epoch() != sc.epoch {
		sc.rearm()
	}
	if s.State() != StatePlaying || dt <= 0 {
		return 0
	}

	drops := 0
	for dt > 0 && s.State() == StatePlaying {
		toDrop := s.DropInterval() - sc.dropElapsed
		toLevel := LevelTickPeriod - sc.levelElapsed
		step := min(dt, toDrop, toLevel)

		sc.dropElapsed += step
		sc.levelElapsed += step
		dt -= step

		if sc.levelElapsed >= LevelTickPeriod {
			sc.levelElapsed = 0
			s.OnLevelTick()
			if s.Level() != sc.level {
				sc.level = s.Level()
				sc.dropElapsed = 0
				continue
			}
		}
		if sc.dropElapsed >= s.DropInterval() {
			sc.dropElapsed = 0
			s.OnDropTick()
			drops++
		}
		if s.Epoch() != sc.epoch {
			sc.rearm()
		}
	}
	return drops
}

// Reset clears accumulated progress.
func (sc *Scheduler) Reset() { sc.rearm() }

// UntilDrop returns the time left before the next drop tick.
func (sc *Scheduler) UntilDrop() time.Duration {
	return max(sc.session.DropInterval()-sc.dropElapsed, 0)
}

func (sc *Scheduler) rearm() {
	sc.dropElapsed = 0
	sc.levelElapsed = 0
	sc.epoch = sc.session.Epoch()
	sc.level = sc.session.Level()
}

package engine

import (
	"strings"
	"time"
)

// Level timing constants.
const (
	MinDropInterval      = 100 * time.Millisecond
	DefaultLevelDuration = 20 * time.Second
	LevelTickPeriod      = time.Second
)

// Difficulty supplies the drop-interval curve.
type Difficulty struct {
	Name            string
	Label           string
	InitialInterval time.Duration
	Speedup         time.Duration
}

// Built-in presets.
var (
	Easy   = Difficulty{Name: "easy", Label: "Easy", InitialInterval: 1200 * time.Millisecond, Speedup: 60 * time.Millisecond}
	Normal = Difficulty{Name: "normal", Label: "Normal", InitialInterval: 1000 * time.Millisecond, Speedup: 75 * time.Millisecond}
	Hard   = Difficulty{Name: "hard", Label: "Hard", InitialInterval: 700 * time.Millisecond, Speedup: 90 * time.Millisecond}
)

// Presets returns the built-in difficulties, easiest first.
func Presets() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

// PresetByName looks up a built-in difficulty (case-insensitive).
func PresetByName(name string) (Difficulty, bool) {
	for _, d := range Presets() {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Interval returns the drop interval at the given level, never below MinDropInterval.
func (d Difficulty) Interval(level int) time.Duration {
	return max(d.InitialInterval-time.Duration(level-1)*d.Speedup, MinDropInterval)
}

// LevelClock tracks the current level and the countdown to the next one.
type LevelClock struct {
	difficulty Difficulty
	duration   time.Duration
	remaining  time.Duration
	level      int
}

// NewLevelClock creates a clock at level 1. A non-positive duration uses
// DefaultLevelDuration.
func NewLevelClock(d Difficulty, duration time.Duration) *LevelClock {
	if duration <= 0 {
		duration = DefaultLevelDuration
	}
	c := &LevelClock{difficulty: d, duration: duration}
	c.Reset()
	return c
}

// Reset returns to level 1 with a full countdown.
func (c *LevelClock) Reset() {
	c.level = 1
	c.remaining = c.duration
}

// Tick consumes one LevelTickPeriod of countdown. It returns true when the
// countdown ran out and the level went up.
func (c *LevelClock) Tick() bool {
	c.remaining -= LevelTickPeriod
	if c.remaining > 0 {
		return false
	}
	c.level++
	c.remaining = c.duration
	return true
}

// Level returns the current level (1-based).
func (c *LevelClock) Level() int { return c.level }

// Remaining returns the time left before the next level.
func (c *LevelClock) Remaining() time.Duration { return c.remaining }

// RemainingSeconds returns the countdown in whole seconds, rounded up.
func (c *LevelClock) RemainingSeconds() int {
	return int((c.remaining + time.Second - 1) / time.Second)
}

// Duration returns the full countdown length.
func (c *LevelClock) Duration() time.Duration { return c.duration }

// Interval returns the current drop interval.
func (c *LevelClock) Interval() time.Duration {
	return c.difficulty.Interval(c.level)
}

// Difficulty returns the active preset.
func (c *LevelClock) Difficulty() Difficulty { return c.difficulty }

// SetDifficulty replaces the preset without touching level or countdown.
func (c *LevelClock) SetDifficulty(d Difficulty) { c.difficulty = d }

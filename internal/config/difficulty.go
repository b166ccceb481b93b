package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/frytris/internal/engine"
)

// ErrUnknownDifficulty is returned when a difficulty name is not configured.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty resolves a configured difficulty by name (case-insensitive). An
// empty name selects DefaultDifficulty, falling back to the first entry.
func (c Config) Difficulty(name string) (engine.Difficulty, error) {
	if name == "" {
		name = c.DefaultDifficulty
	}
	if name == "" && len(c.Difficulties) > 0 {
		return c.Difficulties[0].Difficulty(), nil
	}
	for _, d := range c.Difficulties {
		if strings.EqualFold(d.Name, name) {
			return d.Difficulty(), nil
		}
	}
	return engine.Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// DifficultyList returns every configured difficulty in file order.
func (c Config) DifficultyList() []engine.Difficulty {
	out := make([]engine.Difficulty, len(c.Difficulties))
	for i, d := range c.Difficulties {
		out[i] = d.Difficulty()
	}
	return out
}

// DifficultyNames returns the configured difficulty names.
func (c Config) DifficultyNames() []string {
	names := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		names[i] = d.Name
	}
	return names
}

// NextDifficulty returns the name following current, wrapping around. Used by
// the difficulty picker.
func (c Config) NextDifficulty(current string, step int) string {
	n := len(c.Difficulties)
	if n == 0 {
		return current
	}
	idx := 0
	for i, d := range c.Difficulties {
		if strings.EqualFold(d.Name, current) {
			idx = i
			break
		}
	}
	idx = ((idx+step)%n + n) % n
	return c.Difficulties[idx].Name
}

func presetConfig(d engine.Difficulty) DifficultyConfig {
	return DifficultyConfig{
		Name:              d.Name,
		Label:             d.Label,
		InitialIntervalMs: int(d.InitialInterval.Milliseconds()),
		SpeedupMs:         int(d.Speedup.Milliseconds()),
	}
}

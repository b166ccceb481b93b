package config

import (
	_ "embed"

	"github.com/vovakirdan/frytris/internal/engine"
)

//go:embed defaults/frytris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	presets := engine.Presets()
	difficulties := make([]DifficultyConfig, len(presets))
	for i, d := range presets {
		difficulties[i] = presetConfig(d)
	}
	return Config{
		LevelDurationMs:   int(engine.DefaultLevelDuration.Milliseconds()),
		DefaultDifficulty: engine.Normal.Name,
		Difficulties:      difficulties,
		Rules:             engine.DefaultRule,
		Weights:           WeightsConfig{Filler: 50, SingleItem: 25, MultiItem: 25},
		Scoring: ScoringConfig{
			LineBase:     100,
			PrimaryItem:  engine.ItemBurger.String(),
			PrimaryBonus: intPtr(150),
			ItemBonus:    intPtr(50),
		},
	}
}

func intPtr(v int) *int {
	return &v
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

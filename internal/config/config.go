// Package config provides YAML-based game configuration loading for frytris:
// difficulty presets, level timing, clear rule, scoring and the piece catalog.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/frytris/internal/engine"
)

// Config is the top-level frytris.yaml document.
type Config struct {
	LevelDurationMs   int                `yaml:"level_duration_ms"`
	DefaultDifficulty string             `yaml:"default_difficulty"`
	Difficulties      []DifficultyConfig `yaml:"difficulties"`
	Rules             string             `yaml:"rules"`
	Weights           WeightsConfig      `yaml:"weights"`
	Scoring           ScoringConfig      `yaml:"scoring"`
	Pieces            []PieceConfig      `yaml:"pieces"`
}

// DifficultyConfig defines one named drop-speed curve.
type DifficultyConfig struct {
	Name              string `yaml:"name"`
	Label             string `yaml:"label"`
	InitialIntervalMs int    `yaml:"initial_interval_ms"`
	SpeedupMs         int    `yaml:"speedup_ms"`
}

// WeightsConfig defines relative draw weights per piece category.
type WeightsConfig struct {
	Filler     int `yaml:"filler"`
	SingleItem int `yaml:"single_item"`
	MultiItem  int `yaml:"multi_item"`
}

// ScoringConfig defines points awarded per clear pass. A nil bonus uses
// the built-in value; an explicit zero disables it.
type ScoringConfig struct {
	LineBase     int    `yaml:"line_base"`
	PrimaryItem  string `yaml:"primary_item"`
	PrimaryBonus *int   `yaml:"primary_bonus,omitempty"`
	ItemBonus    *int   `yaml:"item_bonus,omitempty"`
}

// PieceConfig is a catalog entry written as glyph rows.
type PieceConfig struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LevelDuration returns the level countdown length.
func (c Config) LevelDuration() time.Duration {
	if c.LevelDurationMs <= 0 {
		return engine.DefaultLevelDuration
	}
	return time.Duration(c.LevelDurationMs) * time.Millisecond
}

// Difficulty converts the entry to an engine difficulty.
func (d DifficultyConfig) Difficulty() engine.Difficulty {
	label := d.Label
	if label == "" {
		label = d.Name
	}
	return engine.Difficulty{
		Name:            d.Name,
		Label:           label,
		InitialInterval: time.Duration(d.InitialIntervalMs) * time.Millisecond,
		Speedup:         time.Duration(d.SpeedupMs) * time.Millisecond,
	}
}

// EngineWeights converts the weights to engine form.
func (w WeightsConfig) EngineWeights() engine.Weights {
	return engine.Weights{Filler: w.Filler, SingleItem: w.SingleItem, MultiItem: w.MultiItem}
}

// EngineScoring converts the scoring table to engine form.
func (s ScoringConfig) EngineScoring() (engine.Scoring, error) {
	out := engine.DefaultScoring()
	if s.PrimaryItem != "" {
		k, ok := engine.ParseItemKind(s.PrimaryItem)
		if !ok {
			return out, fmt.Errorf("config: unknown primary item %q", s.PrimaryItem)
		}
		out.PrimaryItem = k
	}
	if s.LineBase > 0 {
		out.LineBase = s.LineBase
	}
	if s.PrimaryBonus != nil {
		if *s.PrimaryBonus < 0 {
			return out, fmt.Errorf("config: negative primary_bonus %d", *s.PrimaryBonus)
		}
		out.PrimaryBonus = *s.PrimaryBonus
	}
	if s.ItemBonus != nil {
		if *s.ItemBonus < 0 {
			return out, fmt.Errorf("config: negative item_bonus %d", *s.ItemBonus)
		}
		out.ItemBonus = *s.ItemBonus
	}
	return out, nil
}

// PieceDefs parses the configured pieces. An empty list yields the built-in set.
func (c Config) PieceDefs() ([]engine.PieceDef, error) {
	if len(c.Pieces) == 0 {
		return engine.DefaultPieces(), nil
	}
	defs := make([]engine.PieceDef, 0, len(c.Pieces))
	for i, p := range c.Pieces {
		shape, err := engine.ParseShape(p.Rows)
		if err != nil {
			return nil, fmt.Errorf("config: piece %d (%s): %w", i, p.Name, err)
		}
		defs = append(defs, engine.PieceDef{Name: p.Name, Shape: shape})
	}
	return defs, nil
}

// Catalog builds the piece catalog from pieces and weights.
func (c Config) Catalog(rng engine.RandSource) (*engine.Catalog, error) {
	defs, err := c.PieceDefs()
	if err != nil {
		return nil, err
	}
	cat, err := engine.NewCatalog(defs, c.Weights.EngineWeights(), rng)
	if err != nil {
		return nil, fmt.Errorf("config: catalog: %w", err)
	}
	return cat, nil
}

// SessionOptions assembles engine options for the named difficulty. An empty
// name selects DefaultDifficulty.
func (c Config) SessionOptions(difficulty string, rng engine.RandSource) (engine.Options, error) {
	d, err := c.Difficulty(difficulty)
	if err != nil {
		return engine.Options{}, err
	}
	rule, err := engine.RuleByName(c.Rules)
	if err != nil {
		return engine.Options{}, fmt.Errorf("config: %w", err)
	}
	scoring, err := c.Scoring.EngineScoring()
	if err != nil {
		return engine.Options{}, err
	}
	cat, err := c.Catalog(rng)
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{
		Difficulty:    d,
		LevelDuration: c.LevelDuration(),
		Rule:          rule,
		Scoring:       scoring,
		Catalog:       cat,
	}, nil
}

// Validate checks that the configuration can build a session.
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("config: no difficulties defined")
	}
	seen := make(map[string]bool, len(c.Difficulties))
	for _, d := range c.Difficulties {
		if d.Name == "" {
			return fmt.Errorf("config: difficulty without a name")
		}
		if seen[d.Name] {
			return fmt.Errorf("config: duplicate difficulty %q", d.Name)
		}
		seen[d.Name] = true
		if d.InitialIntervalMs <= 0 || d.SpeedupMs < 0 {
			return fmt.Errorf("config: difficulty %q: interval must be positive and speedup non-negative", d.Name)
		}
	}
	_, err := c.SessionOptions("", nil)
	return err
}

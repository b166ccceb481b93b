package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/frytris/internal/engine"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.LevelDurationMs, cfg.LevelDurationMs)
	assert.Equal(t, def.DefaultDifficulty, cfg.DefaultDifficulty)
	assert.Equal(t, def.Difficulties, cfg.Difficulties)
	assert.Equal(t, def.Rules, cfg.Rules)
	assert.Equal(t, def.Weights, cfg.Weights)
	assert.Equal(t, def.Scoring, cfg.Scoring)

	defs, err := cfg.PieceDefs()
	require.NoError(t, err)
	builtin := engine.DefaultPieces()
	require.Len(t, defs, len(builtin))
	for i := range defs {
		assert.Equal(t, builtin[i].Name, defs[i].Name)
		assert.True(t, builtin[i].Shape.Equal(defs[i].Shape), defs[i].Name)
	}
}

func TestDifficultyLookup(t *testing.T) {
	cfg := Default()

	d, err := cfg.Difficulty("")
	require.NoError(t, err)
	assert.Equal(t, engine.Normal, d)

	d, err = cfg.Difficulty("Hard")
	require.NoError(t, err)
	assert.Equal(t, 700*time.Millisecond, d.InitialInterval)
	assert.Equal(t, 90*time.Millisecond, d.Speedup)

	_, err = cfg.Difficulty("insane")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)

	assert.Equal(t, []string{"easy", "normal", "hard"}, cfg.DifficultyNames())
	assert.Len(t, cfg.DifficultyList(), 3)
}

func TestNextDifficultyWraps(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "hard", cfg.NextDifficulty("normal", 1))
	assert.Equal(t, "easy", cfg.NextDifficulty("hard", 1))
	assert.Equal(t, "hard", cfg.NextDifficulty("easy", -1))
	assert.Equal(t, "normal", cfg.NextDifficulty("unknown", 1))
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("rules: hybrid\nlevel_duration_ms: 5000\n"))
	require.NoError(t, err)

	assert.Equal(t, "hybrid", cfg.Rules)
	assert.Equal(t, 5*time.Second, cfg.LevelDuration())
	assert.Len(t, cfg.Difficulties, 3)

	opts, err := cfg.SessionOptions("easy", nil)
	require.NoError(t, err)
	assert.Equal(t, "hybrid", opts.Rule.Name())
	assert.Equal(t, engine.Easy, opts.Difficulty)
	assert.Equal(t, engine.DefaultScoring(), opts.Scoring)
	assert.NotNil(t, opts.Catalog)
}

func TestScoringBonusesCanBeDisabled(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  item_bonus: 0\n  primary_bonus: 0\n"))
	require.NoError(t, err)

	scoring, err := cfg.Scoring.EngineScoring()
	require.NoError(t, err)
	assert.Equal(t, 0, scoring.ItemBonus)
	assert.Equal(t, 0, scoring.PrimaryBonus)
	assert.Equal(t, 100, scoring.LineBase)

	scoring, err = ScoringConfig{}.EngineScoring()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultScoring(), scoring)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "rules: [unterminated"},
		{"unknown rule", "rules: diagonal"},
		{"unknown item", "scoring:\n  primary_item: pizza"},
		{"negative bonus", "scoring:\n  item_bonus: -5"},
		{"empty piece", "pieces:\n  - name: ghost\n    rows: ['...']"},
		{"mixed piece", "pieces:\n  - name: combo\n    rows: ['BP']"},
		{"wide piece", "pieces:\n  - name: wide\n    rows: ['###########']"},
		{"zero interval", "difficulties:\n  - name: broken\n    initial_interval_ms: 0"},
		{"duplicate", "difficulties:\n  - {name: a, initial_interval_ms: 500}\n  - {name: a, initial_interval_ms: 400}"},
		{"unknown default", "default_difficulty: nope"},
		{"no weight", "weights: {filler: 0, single_item: 0, multi_item: 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCustomPieces(t *testing.T) {
	cfg, err := Parse([]byte(`
weights: {filler: 0, single_item: 1, multi_item: 0}
pieces:
  - name: lonely burger
    rows: ["B"]
`))
	require.NoError(t, err)

	cat, err := cfg.Catalog(nil)
	require.NoError(t, err)
	p := cat.Next()
	assert.Equal(t, "lonely burger", p.Name)
	assert.Equal(t, engine.Item(engine.ItemBurger), p.Kind)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_difficulty: hard\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hard", cfg.DefaultDifficulty)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Rules)

	// Local configs directory.
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", FileName), []byte("rules: columns\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "columns", cfg.Rules)

	// User directory wins over local.
	userDir := filepath.Join(home, ".frytris", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, FileName), []byte("rules: hybrid\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "hybrid", cfg.Rules)
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Difficulties, cfg.Difficulties)
}

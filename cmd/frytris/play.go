package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/frytris/internal/config"
	"github.com/vovakirdan/frytris/internal/core"
	"github.com/vovakirdan/frytris/internal/platform/tui"
	"github.com/vovakirdan/frytris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start frytris in the terminal.

Controls:
  Left/Right, A/D  - Move
  Up, W, X         - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  Enter            - Start (Left/Right picks difficulty first)
  R                - Restart
  M                - Mute the bell
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  frytris play
  frytris play --difficulty hard
  frytris play --config ./my-frytris.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Config:     cfg,
		Difficulty: flagDifficulty,
		Store:      store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	})
}

// loadGameConfig loads the game configuration and checks the requested
// difficulty against it.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if _, err := cfg.Difficulty(flagDifficulty); err != nil {
		return config.Config{}, fmt.Errorf("%w (available: %v)", err, cfg.DifficultyNames())
	}
	return cfg, nil
}

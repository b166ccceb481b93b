// frytris is a falling-block puzzle game for the terminal. Pieces are fries
// and fast-food items; rows of fries clear, and three matching items in a
// cleared row score a combo.
//
// Usage:
//
//	frytris play             - Play a game
//	frytris scores [diff]    - Show high scores
//	frytris presets          - List difficulties and clear rules
//	frytris serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible piece order
//	--db <path>          - Set database path (default: ~/.frytris/scores.db)
//	--config <path>      - Use a custom frytris.yaml
//	--difficulty <name>  - Preselect a difficulty
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
//
// FRYTRIS_DB, FRYTRIS_CONFIG and FRYTRIS_DIFFICULTY (also read from a .env
// file) supply defaults for the matching flags.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/frytris/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// envFlags maps flags to the environment variables that default them.
var envFlags = map[string]string{
	"db":         "FRYTRIS_DB",
	"config":     "FRYTRIS_CONFIG",
	"difficulty": "FRYTRIS_DIFFICULTY",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frytris",
	Short: "Frytris - stack fries and burgers in your terminal",
	Long: `Frytris is a falling-block puzzle game played in the terminal.

Fill a row with fries to clear it. A cleared row holding three matching
items side by side scores a combo; burgers are worth the most.

Available commands:
  play     - Play a game
  scores   - View high scores
  presets  - List difficulties and clear rules
  serve    - Start SSH server for remote play

Examples:
  frytris play
  frytris play --difficulty hard
  frytris scores normal
  frytris serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom frytris.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (see 'frytris presets')")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default warn, info for serve)")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnv loads .env and fills flags the user did not set from the
// environment. Existing environment variables win over .env entries.
func applyEnv(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // A missing .env file is normal
	godotenv.Load()

	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		env, ok := envFlags[f.Name]
		if !ok || f.Changed || err != nil {
			return
		}
		if v, set := os.LookupEnv(env); set && v != "" {
			if setErr := f.Value.Set(v); setErr != nil {
				err = fmt.Errorf("%s: %w", env, setErr)
			}
		}
	})
	return err
}

package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/frytris/internal/config"
	"github.com/vovakirdan/frytris/internal/platform/tui"
	"github.com/vovakirdan/frytris/internal/storage"
)

var (
	flagScoresTUI bool
	flagScoresAll bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores, per difficulty or for one difficulty.

Examples:
  frytris scores
  frytris scores hard
  frytris scores hard --all
  frytris scores --tui
  frytris scores clear easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear [difficulty]",
	Short: "Delete recorded scores (all difficulties when none is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScoresClear,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded game instead of the top 10")
	scoresCmd.AddCommand(scoresClearCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	difficulties := cfg.DifficultyNames()
	if len(args) == 1 {
		d, err := cfg.Difficulty(args[0])
		if err != nil {
			return err
		}
		difficulties = []string{d.Name}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		initial := ""
		if len(args) == 1 {
			initial = difficulties[0]
		}
		return tui.RunScoreboard(store, cfg, initial, width, height)
	}

	out := cmd.OutOrStdout()
	for i, name := range difficulties {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printScores(out, store, cfg, name, flagScoresAll); err != nil {
			return err
		}
	}
	if len(args) == 0 {
		fmt.Fprintln(out)
		return printSummary(out, store, cfg)
	}
	return nil
}

// printScores writes the top 10 table for one difficulty, or every game
// when all is set.
func printScores(w io.Writer, store *storage.Store, cfg config.Config, difficulty string, all bool) error {
	var scores []storage.ScoreEntry
	var err error
	if all {
		scores, err = store.AllScores(difficulty)
	} else {
		scores, err = store.TopScores(difficulty, 10)
	}
	if err != nil {
		return err
	}

	label := difficulty
	if d, err := cfg.Difficulty(difficulty); err == nil && d.Label != "" {
		label = d.Label
	}
	fmt.Fprintf(w, "High Scores - %s\n\n", label)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tScore\tLevel\tLines\tRules\tDate")
	fmt.Fprintln(tw, "  ----\t-----\t-----\t-----\t-----\t----")
	for i, e := range scores {
		fmt.Fprintf(tw, "  %d\t%d\t%d\t%d\t%s\t%s\n",
			i+1, e.Score, e.Level, e.Lines, e.Rules, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stats, err := store.GetDifficultyStats(difficulty)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBest: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

// printSummary writes one line per played difficulty followed by the totals.
func printSummary(w io.Writer, store *storage.Store, cfg config.Config) error {
	all, err := store.GetAllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return nil
	}

	// Configured difficulties first, then any left over from older configs.
	names := cfg.DifficultyNames()
	for _, name := range slices.Sorted(maps.Keys(all)) {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	fmt.Fprintf(w, "Summary\n\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Difficulty\tGames\tBest\tAverage\tLines\tLast played")
	row := func(label string, st *storage.DifficultyStats) {
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%.0f\t%d\t%s\n",
			label, st.GamesCount, st.HighScore, st.AvgScore, st.TotalLines, last)
	}
	for _, name := range names {
		if st, ok := all[name]; ok {
			row(name, st)
		}
	}
	row("total", storage.CombineStats(all))
	return tw.Flush()
}

func runScoresClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	return clearScores(cmd.OutOrStdout(), store, cfg, arg)
}

// clearScores deletes the scores of the named difficulty, matched the same
// way as the scores command, or every score when name is empty.
func clearScores(w io.Writer, store *storage.Store, cfg config.Config, name string) error {
	if name == "" {
		if err := store.ClearScores(""); err != nil {
			return err
		}
		fmt.Fprintln(w, "Cleared all scores.")
		return nil
	}

	d, err := cfg.Difficulty(name)
	if err != nil {
		return err
	}
	if err := store.ClearScores(d.Name); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %s scores.\n", d.Name)
	return nil
}

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frytris/internal/config"
	"github.com/vovakirdan/frytris/internal/engine"
)

var flagPresetsYAML bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulties and clear rules",
	Long: `Shows the configured difficulty presets and the available clear rules.

With --yaml the effective configuration is printed instead, ready to be
saved as ~/.frytris/configs/frytris.yaml and edited.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagPresetsYAML, "yaml", false, "Print the effective configuration as YAML")
}

func runPresets(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagPresetsYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return printPresets(cmd.OutOrStdout(), cfg)
}

// printPresets writes the difficulty and rule tables.
func printPresets(w io.Writer, cfg config.Config) error {
	fmt.Fprintln(w, "Difficulties:")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Name\tLabel\tStart\tSpeedup\tFastest from")
	fmt.Fprintln(tw, "  ----\t-----\t-----\t-------\t------------")
	for _, d := range cfg.DifficultyList() {
		marker := " "
		if d.Name == cfg.DefaultDifficulty {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%dms\t%dms\tlevel %d\n",
			marker, d.Name, d.Label, d.InitialInterval.Milliseconds(), d.Speedup.Milliseconds(), floorLevel(d))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Levels last %s.\n\n", cfg.LevelDuration())

	fmt.Fprintln(w, "Clear rules:")
	fmt.Fprintln(w)
	for _, name := range engine.RuleNames() {
		marker := " "
		if name == cfg.Rules {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "* = configured default")
	return nil
}

// floorLevel is the first level that drops at the minimum interval.
func floorLevel(d engine.Difficulty) int {
	level := 1
	for d.Interval(level) > engine.MinDropInterval {
		if d.Speedup <= 0 {
			return 0
		}
		level++
	}
	return level
}

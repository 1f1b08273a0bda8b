package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/stomp/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [stage]",
	Short: "Show the best recorded runs",
	Long: `Display the top runs, optionally for a single stage.

Examples:
  stomp scores
  stomp scores flat --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	stage := ""
	if len(args) == 1 {
		stage = args[0]
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}

	store, err := storage.Open(env.dbPath())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.TopRuns(stage, flagLimit)
	if err != nil {
		return err
	}

	printScores(cmd.OutOrStdout(), stage, runs)
	return nil
}

func printScores(w io.Writer, stage string, runs []storage.Run) {
	title := "High Scores"
	if stage != "" {
		title += " - " + stage
	}
	_, _ = fmt.Fprintln(w, titleStyle.Render(title))
	_, _ = fmt.Fprintln(w)

	if len(runs) == 0 {
		_, _ = fmt.Fprintln(w, "No runs recorded yet.")
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, dimStyle.Render("Play 'stomp play' to set the first high score!"))
		return
	}

	header := fmt.Sprintf("  %-4s  %-8s  %-8s  %-6s  %-8s  %s", "Rank", "Score", "Stage", "Coins", "Defeated", "Date")
	_, _ = fmt.Fprintln(w, headerStyle.Render(header))

	for i, r := range runs {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		line := fmt.Sprintf("  %-4d  %-8d  %-8s  %-6d  %-8d  %s", i+1, r.Score, r.Stage, r.Coins, r.Defeated, date)
		_, _ = fmt.Fprintln(w, valueStyle.Render(line))
	}
}

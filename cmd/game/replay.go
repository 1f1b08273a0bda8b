package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/stomp/internal/application/replay"
	"github.com/younwookim/stomp/internal/application/system"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recording without a window",
	Long: `Feed a recorded input file through the simulation at full speed and
print the outcome. The same file always produces the same result.

Examples:
  stomp replay replays/run.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}

	wc, _, err := env.worldConfig(data.Stage, data.StageOptions())
	if err != nil {
		return err
	}

	replayer := replay.NewReplayer(*data)
	result := replay.Run(system.NewWorld(wc, data.Seed), replayer, env.dt())
	env.logger.Debug("replay finished", "frames", result.Frames, "of", replayer.TotalFrames())

	printReplayResult(cmd.OutOrStdout(), args[0], data, result)
	return nil
}

func printReplayResult(w io.Writer, file string, data *replay.ReplayData, r replay.Result) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("Replay - "+file))
	_, _ = fmt.Fprintln(w)

	jump := data.Jump
	if jump == "" {
		jump = "default"
	}
	_, _ = fmt.Fprintln(w, field("Stage", data.Stage))
	_, _ = fmt.Fprintln(w, field("Seed", data.Seed))
	_, _ = fmt.Fprintln(w, field("Jump", jump))
	_, _ = fmt.Fprintln(w, field("Frames", fmt.Sprintf("%d/%d", r.Frames, len(data.Frames))))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, field("Score", r.Stats.Score()))
	_, _ = fmt.Fprintln(w, field("Coins", r.Stats.CoinsCollected))
	_, _ = fmt.Fprintln(w, field("Defeated", r.Stats.EnemiesDefeated))
	_, _ = fmt.Fprintln(w, field("Lives", r.Final.HUD.Lives))
	_, _ = fmt.Fprintln(w)

	if r.GameOver {
		_, _ = fmt.Fprintln(w, gameOverStyle.Render("GAME OVER"))
	} else {
		_, _ = fmt.Fprintln(w, dimStyle.Render("recording ended before game over"))
	}
}

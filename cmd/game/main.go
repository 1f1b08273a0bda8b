// stomp is a single-screen platformer: walk, jump, stomp turtles and collect coins.
//
// Usage:
//
//	stomp play               - Play the default stage
//	stomp play --replay f    - Watch a recorded run in the window
//	stomp replay <file>      - Re-simulate a recording headlessly and print the result
//	stomp scores [stage]     - Show the best recorded runs
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay (0 = time based)
//	--db <path>           - Set scores database path (default from settings)
//	--settings <path>     - Load user settings from this YAML file
//	--log-level <level>   - debug, info, warn or error
//	--config-dir <dir>    - Read tuning JSON from disk instead of the embedded copy
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagSettings  string
	flagLogLevel  string
	flagConfigDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stomp",
	Short: "Stomp - a tiny platformer",
	Long: `Stomp is a single-screen platformer. Walk and jump, stomp turtles into
shells, collect coins for extra lives and survive as long as you can.

Examples:
  stomp play
  stomp play --jump arc --roster classic
  stomp play --record replays/run.json
  stomp replay replays/run.json
  stomp scores flat`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory with physics.json, entities.json and stages/")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

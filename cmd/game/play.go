package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/stomp/internal/application/game"
	"github.com/younwookim/stomp/internal/application/replay"
	"github.com/younwookim/stomp/internal/application/scene/playing"
	"github.com/younwookim/stomp/internal/application/system"
	"github.com/younwookim/stomp/internal/infrastructure/audio"
	"github.com/younwookim/stomp/internal/infrastructure/storage"
)

var (
	flagStage  string
	flagJump   string
	flagRoster string
	flagRecord string
	flagReplay string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Play a stage in a window.

Controls: A/D or arrows to move, W/Up/Space to jump, P/Esc to pause,
M to toggle music, Z/Enter to restart after game over, Q to quit.

Examples:
  stomp play
  stomp play --stage classic --jump arc
  stomp play --record replays/run.json
  stomp play --replay replays/run.json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStage, "stage", "flat", "Stage name (configs/stages/<name>.json)")
	playCmd.Flags().StringVar(&flagJump, "jump", "", "Jump model: impulse or arc (default from physics.json)")
	playCmd.Flags().StringVar(&flagRoster, "roster", "", "Enemy roster: classic or turtles (default from stage)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (\"auto\" = timestamped file in the replay dir)")
	playCmd.Flags().StringVar(&flagReplay, "replay", "", "Play back a recorded file instead of reading the keyboard")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	logger := env.logger

	stage := flagStage
	opts := system.StageOptions{JumpModel: flagJump, Roster: flagRoster}
	seed := resolveSeed(flagSeed)

	var replayer *replay.Replayer
	if flagReplay != "" {
		data, err := replay.LoadReplay(flagReplay)
		if err != nil {
			return err
		}
		replayer = replay.NewReplayer(*data)
		stage, seed, opts = data.Stage, data.Seed, data.StageOptions()
		logger.Info("replaying", "file", flagReplay, "frames", replayer.TotalFrames(), "seed", seed)
	}

	wc, stageCfg, err := env.worldConfig(stage, opts)
	if err != nil {
		return err
	}
	world := system.NewWorld(wc, seed)

	recordPath := flagRecord
	if recordPath == "auto" {
		recordPath = playing.GenerateFilename(env.settings.Replay.Dir)
	}

	var sink audio.Sink = audio.Nop{}
	if env.settings.Audio.Enabled {
		m := audio.NewManager(env.settings.Audio, stageCfg.Music, logger)
		defer func() { _ = m.Close() }()
		sink = m
	}

	sceneOpts := playing.Options{
		World:      world,
		Stage:      stage,
		Jump:       env.jumpName(opts.JumpModel),
		Roster:     opts.Roster,
		Background: stageCfg.Background,
		Audio:      audio.NewDispatcher(sink, env.settings.Audio.CoinCooldown()),
		Sprites:    playing.LoadSprites("assets/images", logger),
		Replayer:   replayer,
		Logger:     logger,
		RecordPath: recordPath,
	}

	store, err := storage.Open(env.dbPath())
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer func() { _ = store.Close() }()
		sceneOpts.Scores = store
		if best, err := store.Best(stage); err == nil && best > 0 {
			logger.Info("best score", "stage", stage, "score", best)
		}
	}

	display := env.game.Physics.Display
	scale := env.settings.Window.Scale
	if scale <= 0 {
		scale = display.Scale
	}

	g := game.New(playing.New(sceneOpts), display.ScreenWidth, display.ScreenHeight)
	g.SetDT(env.dt())

	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle(env.settings.Window.Title + " - " + stageCfg.Name)
	ebiten.SetTPS(display.Framerate)

	logger.Debug("starting", "stage", stage, "seed", seed, "jump", sceneOpts.Jump)
	return ebiten.RunGame(g)
}

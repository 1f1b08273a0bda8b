package main

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/stomp/internal/application/system"
	"github.com/younwookim/stomp/internal/infrastructure/config"
	"github.com/younwookim/stomp/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

// appEnv is everything a subcommand needs before it builds a world
type appEnv struct {
	settings config.Settings
	logger   *log.Logger
	loader   *config.Loader
	game     *config.GameConfig
}

// newAppEnv loads settings and tuning according to the global flags
func newAppEnv() (*appEnv, error) {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return nil, err
	}

	level := settings.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logger := logging.New(level, "stomp")

	var loader *config.Loader
	if flagConfigDir != "" {
		loader = config.NewLoader(flagConfigDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &appEnv{settings: settings, logger: logger, loader: loader, game: cfg}, nil
}

// worldConfig loads a stage and combines it with the tuning
func (e *appEnv) worldConfig(stage string, opts system.StageOptions) (system.WorldConfig, *config.StageConfig, error) {
	stageCfg, err := e.loader.LoadStage(stage)
	if err != nil {
		return system.WorldConfig{}, nil, fmt.Errorf("failed to load stage: %w", err)
	}

	wc, err := system.LoadWorldConfig(e.game, stageCfg, opts)
	if err != nil {
		return system.WorldConfig{}, nil, fmt.Errorf("stage %s: %w", stage, err)
	}
	return wc, stageCfg, nil
}

// dbPath returns --db or the settings default
func (e *appEnv) dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return e.settings.Scores.DB
}

// dt is the fixed simulation step
func (e *appEnv) dt() float64 {
	fps := e.game.Physics.Display.Framerate
	if fps <= 0 {
		fps = 60
	}
	return 1.0 / float64(fps)
}

// jumpName reports the jump model a world will use
func (e *appEnv) jumpName(override string) string {
	if override != "" {
		return override
	}
	return e.game.Physics.Jump.Model
}

// resolveSeed returns seed, or a time-based seed when seed is 0
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 2880.0, cfg.Physics.Gravity)
	assert.Equal(t, "impulse", cfg.Jump.Model)
	assert.Equal(t, 15, cfg.Jump.ArcCounter)
	assert.Equal(t, 2.0, cfg.Spawn.Interval)
	assert.Equal(t, 3, cfg.Spawn.MaxSimultaneous)
	assert.Equal(t, 15, cfg.Spawn.MaxLifetime)
	assert.Equal(t, 10, cfg.Coins.Threshold)
	assert.Equal(t, 8.0, cfg.PowerUps.StarDuration)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, "player", cfg.Player.ID)
	assert.Equal(t, 50.0, cfg.Player.Small.Height)
	assert.Equal(t, 80.0, cfg.Player.Large.Height)
	assert.Equal(t, 3, cfg.Player.Lives)
	assert.Equal(t, 480.0, cfg.Enemies.Turtle.ShellSpeed)
	assert.Equal(t, []string{"brown", "black"}, cfg.Enemies.Goomba.Variants)

	roster, ok := cfg.Rosters["turtles"]
	require.True(t, ok)
	require.Len(t, roster, 2)
	assert.Equal(t, "goomba", roster[0].Kind)
	assert.Equal(t, 0.7, roster[0].Weight)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("flat")
	require.NoError(t, err)

	assert.Equal(t, "flat", cfg.ID)
	assert.Equal(t, 800.0, cfg.Size.Width)
	assert.Equal(t, 500.0, cfg.Ground)
	assert.Equal(t, 100.0, cfg.PlayerSpawn.X)
	assert.Equal(t, "turtles", cfg.Roster)
	assert.Len(t, cfg.Mushrooms, 2)
	require.NotNil(t, cfg.Star)
	assert.Equal(t, 650.0, cfg.Star.X)
}

func TestLoader_LoadStage_NotFound(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	_, err := loader.LoadStage("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read stages/nonexistent.json")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	require.NotNil(t, cfg.Physics)
	require.NotNil(t, cfg.Entities)
}

func TestNewFSLoader_ParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json": &fstest.MapFile{Data: []byte("{not json")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadPhysics()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse physics.json")
}

func TestGameConfig_Validate(t *testing.T) {
	base := func() *GameConfig {
		cfg, err := NewLoader("../../../cmd/game/configs").LoadAll()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *GameConfig)
		wantErr string
	}{
		{"valid", func(c *GameConfig) {}, ""},
		{"unknown jump model", func(c *GameConfig) { c.Physics.Jump.Model = "rocket" }, `unknown jump.model "rocket"`},
		{"arc without counter", func(c *GameConfig) {
			c.Physics.Jump.Model = "arc"
			c.Physics.Jump.ArcCounter = 0
		}, "arc jump needs positive jump.arcCounter"},
		{"zero spawn interval", func(c *GameConfig) { c.Physics.Spawn.Interval = 0 }, "spawn.interval must be positive"},
		{"threshold above count", func(c *GameConfig) {
			c.Physics.Coins.Count = 5
			c.Physics.Coins.Threshold = 10
		}, "coins.threshold 10 exceeds coins.count 5"},
		{"threshold equals count", func(c *GameConfig) {
			c.Physics.Coins.Count = 10
			c.Physics.Coins.Threshold = 10
		}, ""},
		{"zero lives", func(c *GameConfig) { c.Entities.Player.Lives = 0 }, "player.lives must be positive"},
		{"bad roster weight", func(c *GameConfig) {
			c.Entities.Rosters["classic"] = []RosterEntry{{Kind: "goomba", Weight: 0}}
		}, `roster "classic": goomba weight must be positive`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStageConfig_Validate(t *testing.T) {
	stage := StageConfig{
		Size:     StageSizeConfig{Width: 800, Height: 600},
		Ground:   700,
		CoinArea: AreaConfig{MinX: 500, MaxX: 200},
		Mushrooms: []MushroomConfig{
			{Kind: "poison"},
		},
	}

	err := stage.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ground 700 outside the stage")
	assert.Contains(t, err.Error(), "coinArea min exceeds max")
	assert.Contains(t, err.Error(), `unknown mushroom kind "poison"`)
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

func loadShippedConfig(t *testing.T) (*config.GameConfig, *config.StageConfig) {
	t.Helper()
	loader := config.NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	stage, err := loader.LoadStage("flat")
	require.NoError(t, err)
	return cfg, stage
}

func TestLoadWorldConfig(t *testing.T) {
	cfg, stage := loadShippedConfig(t)

	wc, err := LoadWorldConfig(cfg, stage, StageOptions{})
	require.NoError(t, err)

	assert.Equal(t, entity.Playfield{Width: 800, Height: 600, Ground: 500}, wc.Field)
	assert.Equal(t, entity.Size{W: 40, H: 50}, wc.Player.Small)
	assert.Equal(t, entity.Size{W: 40, H: 80}, wc.Player.Large)
	assert.Equal(t, 10.0, wc.Player.StompTolerance)
	assert.Equal(t, 100.0, wc.PlayerSpawnX)
	assert.Equal(t, ImpulseJump{Impulse: 720, Gravity: 2880}, wc.Jump)
	assert.Equal(t, []RosterEntry{
		{Kind: entity.KindGoomba, Weight: 0.7},
		{Kind: entity.KindTurtle, Weight: 0.3},
	}, wc.Roster)
	assert.Equal(t, entity.Rect{X: 200, Y: 440, W: 580, H: 40}, wc.Coins.Area)
	assert.Equal(t, []MushroomPlacement{{X: 600, Y: 440}, {X: 700, Y: 440, Life: true}}, wc.Mushrooms)
	require.NotNil(t, wc.Star)
	assert.Equal(t, Spot{X: 650, Y: 440}, *wc.Star)
	assert.Equal(t, 800.0, wc.EnemySpawnX)
	assert.Equal(t, 1.0, wc.HitGrace)
}

func TestLoadWorldConfig_Overrides(t *testing.T) {
	cfg, stage := loadShippedConfig(t)

	wc, err := LoadWorldConfig(cfg, stage, StageOptions{JumpModel: "arc", Roster: "classic"})
	require.NoError(t, err)

	assert.Equal(t, ArcJump{Counter: 15, RiseStep: 0.7, FallStep: 0.6}, wc.Jump)
	assert.Equal(t, []RosterEntry{{Kind: entity.KindGoomba, Weight: 1}}, wc.Roster)
}

func TestLoadWorldConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    StageOptions
		mutate  func(cfg *config.GameConfig)
		wantErr string
	}{
		{"unknown jump", StageOptions{JumpModel: "hover"}, nil, `unknown jump model "hover"`},
		{"unknown roster", StageOptions{Roster: "dragons"}, nil, `unknown roster "dragons"`},
		{"unknown enemy kind", StageOptions{Roster: "odd"}, func(cfg *config.GameConfig) {
			cfg.Entities.Rosters["odd"] = []config.RosterEntry{{Kind: "koopa", Weight: 1}}
		}, `roster "odd": unknown enemy kind "koopa"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, stage := loadShippedConfig(t)
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			_, err := LoadWorldConfig(cfg, stage, tt.opts)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLoadWorldConfig_RunsClassicStage(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	stage, err := loader.LoadStage("classic")
	require.NoError(t, err)

	wc, err := LoadWorldConfig(cfg, stage, StageOptions{})
	require.NoError(t, err)

	w := NewWorld(wc, 1)
	assert.Equal(t, 450.0, w.player.Bottom())
	idle(w, 600)
	for _, e := range w.enemies {
		assert.Equal(t, entity.KindGoomba, e.Kind())
	}
}

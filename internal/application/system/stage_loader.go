package system

import (
	"fmt"

	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

// StageOptions override stage defaults chosen on the command line
type StageOptions struct {
	JumpModel string // "" keeps physics.json's jump.model
	Roster    string // "" keeps the stage's roster
}

// LoadWorldConfig converts loaded JSON configs into an immutable WorldConfig
func LoadWorldConfig(cfg *config.GameConfig, stage *config.StageConfig, opts StageOptions) (WorldConfig, error) {
	phys, ents := cfg.Physics, cfg.Entities

	jumpCfg := phys.Jump
	if opts.JumpModel != "" {
		jumpCfg.Model = opts.JumpModel
	}
	jump, err := NewJumpModel(jumpCfg, phys.Physics.Gravity)
	if err != nil {
		return WorldConfig{}, err
	}

	rosterName := stage.Roster
	if opts.Roster != "" {
		rosterName = opts.Roster
	}
	roster, err := buildRoster(ents.Rosters, rosterName)
	if err != nil {
		return WorldConfig{}, err
	}

	mushrooms := make([]MushroomPlacement, 0, len(stage.Mushrooms))
	for _, m := range stage.Mushrooms {
		mushrooms = append(mushrooms, MushroomPlacement{X: m.X, Y: m.Y, Life: m.Kind == "life"})
	}

	var star *Spot
	if stage.Star != nil {
		star = &Spot{X: stage.Star.X, Y: stage.Star.Y}
	}

	spawnX := stage.EnemySpawnX
	if spawnX == 0 {
		spawnX = stage.Size.Width
	}

	return WorldConfig{
		Field: entity.Playfield{
			Width:  stage.Size.Width,
			Height: stage.Size.Height,
			Ground: stage.Ground,
		},
		Player: entity.PlayerSpec{
			Small:          toSize(ents.Player.Small),
			Large:          toSize(ents.Player.Large),
			Speed:          ents.Player.Speed,
			Lives:          ents.Player.Lives,
			StompTolerance: phys.Jump.StompTolerance,
		},
		PlayerSpawnX: stage.PlayerSpawn.X,
		Jump:         jump,
		Goomba: entity.GoombaSpec{
			Size:      toSize(ents.Enemies.Goomba.Size),
			Speed:     ents.Enemies.Goomba.Speed,
			Stompable: ents.Enemies.Goomba.Stompable,
		},
		GoombaVariants: append([]string(nil), ents.Enemies.Goomba.Variants...),
		Turtle: entity.TurtleSpec{
			Size:        toSize(ents.Enemies.Turtle.Size),
			ShellHeight: ents.Enemies.Turtle.ShellHeight,
			Speed:       ents.Enemies.Turtle.Speed,
			ShellSpeed:  ents.Enemies.Turtle.ShellSpeed,
			StompedHold: ents.Enemies.Turtle.StompedHold,
		},
		Roster:      roster,
		EnemySpawnX: spawnX,
		Spawn: SpawnRules{
			Interval:        phys.Spawn.Interval,
			MaxSimultaneous: phys.Spawn.MaxSimultaneous,
			MaxLifetime:     phys.Spawn.MaxLifetime,
		},
		Coins: CoinRules{
			Count:     phys.Coins.Count,
			Threshold: phys.Coins.Threshold,
			Attempts:  phys.Coins.PlacementAttempts,
			Size:      toSize(ents.Pickups.Coin),
			Area: entity.Rect{
				X: stage.CoinArea.MinX,
				Y: stage.CoinArea.MinY,
				W: stage.CoinArea.MaxX - stage.CoinArea.MinX,
				H: stage.CoinArea.MaxY - stage.CoinArea.MinY,
			},
		},
		Mushrooms:         mushrooms,
		MushroomSize:      toSize(ents.Pickups.Mushroom),
		MushroomDuration:  phys.PowerUps.MushroomDuration,
		MushroomMeanDelay: phys.PowerUps.MushroomMeanDelay,
		Star:              star,
		StarSize:          toSize(ents.Pickups.Star),
		StarDuration:      phys.PowerUps.StarDuration,
		HitGrace:          phys.Combat.HitGrace,
	}, nil
}

func buildRoster(rosters map[string][]config.RosterEntry, name string) ([]RosterEntry, error) {
	entries, ok := rosters[name]
	if !ok {
		return nil, fmt.Errorf("unknown roster %q", name)
	}

	roster := make([]RosterEntry, 0, len(entries))
	for _, e := range entries {
		kind, err := parseEnemyKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("roster %q: %w", name, err)
		}
		roster = append(roster, RosterEntry{Kind: kind, Weight: e.Weight})
	}
	return roster, nil
}

func parseEnemyKind(s string) (entity.EnemyKind, error) {
	switch s {
	case "goomba":
		return entity.KindGoomba, nil
	case "turtle":
		return entity.KindTurtle, nil
	default:
		return 0, fmt.Errorf("unknown enemy kind %q", s)
	}
}

func toSize(s config.SizeConfig) entity.Size {
	return entity.Size{W: s.Width, H: s.Height}
}

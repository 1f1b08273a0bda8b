package system

import (
	"math/rand"

	"github.com/younwookim/stomp/internal/domain/entity"
)

const testDT = 1.0 / 60.0

// testRNG returns a deterministic random source for tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// createTestWorldConfig mirrors the shipped tuning with hit grace disabled
func createTestWorldConfig() WorldConfig {
	return WorldConfig{
		Field: entity.Playfield{Width: 800, Height: 600, Ground: 500},
		Player: entity.PlayerSpec{
			Small:          entity.Size{W: 40, H: 50},
			Large:          entity.Size{W: 40, H: 80},
			Speed:          300,
			Lives:          3,
			StompTolerance: 10,
		},
		PlayerSpawnX: 100,
		Jump:         ImpulseJump{Impulse: 720, Gravity: 2880},

		Goomba:         entity.GoombaSpec{Size: entity.Size{W: 40, H: 40}, Speed: 180},
		GoombaVariants: []string{"brown", "black"},
		Turtle: entity.TurtleSpec{
			Size:        entity.Size{W: 40, H: 40},
			ShellHeight: 30,
			Speed:       120,
			ShellSpeed:  480,
		},
		Roster: []RosterEntry{
			{Kind: entity.KindGoomba, Weight: 0.7},
			{Kind: entity.KindTurtle, Weight: 0.3},
		},
		EnemySpawnX: 800,
		Spawn:       SpawnRules{Interval: 2, MaxSimultaneous: 3, MaxLifetime: 15},

		Coins: CoinRules{
			Count:     10,
			Threshold: 10,
			Attempts:  100,
			Size:      entity.Size{W: 30, H: 30},
			Area:      entity.Rect{X: 200, Y: 440, W: 580, H: 40},
		},

		Mushrooms: []MushroomPlacement{
			{X: 600, Y: 440},
			{X: 700, Y: 440, Life: true},
		},
		MushroomSize:      entity.Size{W: 30, H: 30},
		MushroomDuration:  10,
		MushroomMeanDelay: 20,

		Star:         &Spot{X: 650, Y: 440},
		StarSize:     entity.Size{W: 30, H: 30},
		StarDuration: 8,
	}
}

// createQuietWorld builds a world with no spawning, coins or power-ups so a
// test can place exactly the entities it needs
func createQuietWorld() *World {
	cfg := createTestWorldConfig()
	cfg.Spawn.MaxLifetime = 0
	cfg.Coins.Count = 0
	cfg.Mushrooms = nil
	cfg.Star = nil
	return NewWorld(cfg, 12345)
}

func (w *World) addGoomba(x float64) *entity.Goomba {
	g := entity.NewGoomba(w.newID(), x, w.cfg.Field, w.cfg.Goomba, "brown")
	w.enemies = append(w.enemies, g)
	return g
}

func (w *World) addTurtle(x float64) *entity.Turtle {
	t := entity.NewTurtle(w.newID(), x, w.cfg.Field, w.cfg.Turtle)
	w.enemies = append(w.enemies, t)
	return t
}

func (w *World) addCoin(cx, cy float64) *entity.Coin {
	c := entity.NewCoin(w.newID(), cx, cy, w.cfg.Coins.Size)
	w.coins = append(w.coins, c)
	return c
}

// idle advances the world n ticks with no input
func idle(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Tick(entity.Input{}, testDT)
	}
}

func inputOf(left, right, jump bool) entity.Input {
	return entity.Input{Left: left, Right: right, Jump: jump}
}

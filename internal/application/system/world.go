package system

import (
	"math/rand"

	"github.com/younwookim/stomp/internal/domain/entity"
)

// MushroomPlacement is a fixed mushroom position on the stage
type MushroomPlacement struct {
	X, Y float64
	Life bool
}

// WorldConfig is the immutable tuning a World is built from
type WorldConfig struct {
	Field        entity.Playfield
	Player       entity.PlayerSpec
	PlayerSpawnX float64
	Jump         entity.JumpModel

	Goomba         entity.GoombaSpec
	GoombaVariants []string
	Turtle         entity.TurtleSpec
	Roster         []RosterEntry
	EnemySpawnX    float64
	Spawn          SpawnRules

	Coins CoinRules

	Mushrooms         []MushroomPlacement
	MushroomSize      entity.Size
	MushroomDuration  float64
	MushroomMeanDelay float64

	Star         *Spot
	StarSize     entity.Size
	StarDuration float64

	HitGrace float64 // invincibility granted after a damaging hit; 0 disables
}

// Stats accumulate over one run
type Stats struct {
	CoinsCollected  int
	EnemiesDefeated int
	Ticks           int
}

// Score folds the run stats into a single number for the scoreboard
func (s Stats) Score() int {
	return s.CoinsCollected*100 + s.EnemiesDefeated*200 + s.Ticks/60
}

// World owns every entity and advances them one fixed tick at a time
type World struct {
	cfg  WorldConfig
	seed int64
	rng  *rand.Rand

	player    *entity.Player
	enemies   []entity.Enemy
	coins     []*entity.Coin
	mushrooms []*entity.Mushroom
	star      *entity.Star
	spawner   *Spawner

	nextID   entity.EntityID
	gameOver bool
	stats    Stats
	events   []Event
}

// NewWorld builds a world from cfg with a deterministic random source seeded by seed
func NewWorld(cfg WorldConfig, seed int64) *World {
	w := &World{cfg: cfg, seed: seed}
	w.Reset()
	return w
}

// Reset rebuilds every entity from the config and the original seed
func (w *World) Reset() {
	w.rng = rand.New(rand.NewSource(w.seed))
	w.nextID = 0
	w.gameOver = false
	w.stats = Stats{}
	w.events = nil

	w.player = entity.NewPlayer(w.cfg.PlayerSpawnX, w.cfg.Field, w.cfg.Player, w.cfg.Jump)
	w.enemies = make([]entity.Enemy, 0, w.cfg.Spawn.MaxSimultaneous)
	w.spawner = NewSpawner(w.cfg.Spawn, w.cfg.Roster, w.rng)

	w.mushrooms = make([]*entity.Mushroom, 0, len(w.cfg.Mushrooms))
	for _, m := range w.cfg.Mushrooms {
		w.mushrooms = append(w.mushrooms, entity.NewMushroom(
			w.newID(), m.X, m.Y, w.cfg.MushroomSize, m.Life,
			w.cfg.MushroomDuration, w.cfg.MushroomMeanDelay,
		))
	}

	w.star = nil
	if s := w.cfg.Star; s != nil {
		w.star = entity.NewStar(w.newID(), s.X, s.Y, w.cfg.StarSize, w.cfg.StarDuration)
	}

	w.regenerateCoins()
}

// Tick advances the simulation by dt and returns the events it produced.
// After game over the world is frozen and Tick ignores its input.
func (w *World) Tick(in entity.Input, dt float64) []Event {
	w.events = nil
	if w.gameOver {
		return nil
	}
	w.stats.Ticks++

	w.player.SetHorizontalIntent(in.Direction(), dt)
	if in.Jump {
		w.player.RequestJump()
	}

	w.spawnEnemies(dt)
	w.advanceEnemies(dt)
	w.resolvePlayerEnemies()
	if w.gameOver {
		return w.events
	}
	w.resolveShells()
	w.dropInactiveEnemies()
	w.resolveCoins()
	w.updateMushrooms(dt)
	w.resolveStar()

	w.player.IntegratePhysics(dt)
	w.player.TickStatus(dt)

	return w.events
}

// GameOver reports whether the player has run out of lives
func (w *World) GameOver() bool {
	return w.gameOver
}

// Stats returns the run statistics so far
func (w *World) Stats() Stats {
	return w.stats
}

// Seed returns the seed the world was built with
func (w *World) Seed() int64 {
	return w.seed
}

// Config returns the world's construction config
func (w *World) Config() WorldConfig {
	return w.cfg
}

func (w *World) newID() entity.EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// spawnEnemies is step 1: advance the spawn timer and maybe add an enemy
func (w *World) spawnEnemies(dt float64) {
	kind, ok := w.spawner.MaybeSpawnEnemy(dt, len(w.enemies))
	if !ok {
		return
	}

	var e entity.Enemy
	switch kind {
	case entity.KindTurtle:
		e = entity.NewTurtle(w.newID(), w.cfg.EnemySpawnX, w.cfg.Field, w.cfg.Turtle)
	default:
		variant := w.spawner.PickVariant(w.cfg.GoombaVariants)
		e = entity.NewGoomba(w.newID(), w.cfg.EnemySpawnX, w.cfg.Field, w.cfg.Goomba, variant)
	}
	w.enemies = append(w.enemies, e)
	w.emit(EnemySpawned{ID: e.ID(), Kind: e.Kind()})
}

// advanceEnemies is step 2: move every enemy and drop the ones that left
func (w *World) advanceEnemies(dt float64) {
	for _, e := range w.enemies {
		e.Advance(dt, w.cfg.Field)
	}
	w.dropInactiveEnemies()
}

func (w *World) dropInactiveEnemies() {
	active := w.enemies[:0]
	for _, e := range w.enemies {
		if e.Active() {
			active = append(active, e)
		}
	}
	for i := len(active); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = active
}

// regenerateCoins replaces the coin set with a fresh one placed away from the player
func (w *World) regenerateCoins() {
	spots := w.spawner.RegenerateCoinSet(w.cfg.Coins, w.cfg.Coins.Count, w.player.Box())
	w.coins = make([]*entity.Coin, 0, len(spots))
	for _, s := range spots {
		w.coins = append(w.coins, entity.NewCoin(w.newID(), s.X, s.Y, w.cfg.Coins.Size))
	}
}

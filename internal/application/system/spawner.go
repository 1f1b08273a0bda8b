package system

import (
	"github.com/younwookim/stomp/internal/domain/entity"
)

// Spot is a point on the playfield, used for pickup centers
type Spot struct {
	X, Y float64
}

// SpawnRules throttle enemy generation
type SpawnRules struct {
	Interval        float64 // seconds between spawn attempts
	MaxSimultaneous int
	MaxLifetime     int
}

// RosterEntry is one weighted enemy variant
type RosterEntry struct {
	Kind   entity.EnemyKind
	Weight float64
}

// CoinRules control coin placement and the extra-life threshold
type CoinRules struct {
	Count     int
	Threshold int
	Attempts  int         // rejection-sampling attempts per coin
	Size      entity.Size // coin box size
	Area      entity.Rect // range of coin centers
}

// Spawner decides when enemies appear and where coins go.
// All randomness comes from the injected source.
type Spawner struct {
	rules   SpawnRules
	roster  []RosterEntry
	rng     entity.RandomSource
	elapsed float64
	spawned int
}

// NewSpawner creates a spawner with a fresh timer and no spawns
func NewSpawner(rules SpawnRules, roster []RosterEntry, rng entity.RandomSource) *Spawner {
	return &Spawner{
		rules:  rules,
		roster: roster,
		rng:    rng,
	}
}

// Spawned returns the cumulative number of enemies spawned
func (s *Spawner) Spawned() int {
	return s.spawned
}

// MaybeSpawnEnemy advances the spawn timer. Once the interval has elapsed it
// resets the timer and, if both caps allow it, picks the kind to spawn.
func (s *Spawner) MaybeSpawnEnemy(dt float64, active int) (entity.EnemyKind, bool) {
	s.elapsed += dt
	if s.elapsed < s.rules.Interval {
		return 0, false
	}
	s.elapsed = 0

	if active >= s.rules.MaxSimultaneous || s.spawned >= s.rules.MaxLifetime || len(s.roster) == 0 {
		return 0, false
	}
	s.spawned++
	return s.pickKind(), true
}

func (s *Spawner) pickKind() entity.EnemyKind {
	total := 0.0
	for _, e := range s.roster {
		total += e.Weight
	}

	r := s.rng.Float64() * total
	for _, e := range s.roster {
		if r < e.Weight {
			return e.Kind
		}
		r -= e.Weight
	}
	return s.roster[len(s.roster)-1].Kind
}

// PickVariant chooses a sprite variant name, or "" when there are none
func (s *Spawner) PickVariant(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[s.rng.Intn(len(variants))]
}

// RegenerateCoinSet returns n coin centers whose boxes avoid the player box.
// Each coin is rejection-sampled; when every attempt lands on the player the
// coin is placed by a deterministic scan across the coin area instead.
func (s *Spawner) RegenerateCoinSet(rules CoinRules, n int, player entity.Rect) []Spot {
	spots := make([]Spot, 0, n)
	for i := 0; i < n; i++ {
		spot, ok := s.sampleCoin(rules, player)
		if !ok {
			spot = fallbackCoin(rules, i, player)
		}
		spots = append(spots, spot)
	}
	return spots
}

func (s *Spawner) sampleCoin(rules CoinRules, player entity.Rect) (Spot, bool) {
	for attempt := 0; attempt < rules.Attempts; attempt++ {
		spot := Spot{
			X: rules.Area.X + float64(s.rng.Intn(int(rules.Area.W)+1)),
			Y: rules.Area.Y + float64(s.rng.Intn(int(rules.Area.H)+1)),
		}
		if !coinBox(rules, spot).Overlaps(player) {
			return spot, true
		}
	}
	return Spot{}, false
}

// fallbackCoin walks the middle row of the coin area in coin-width steps,
// starting at a slot derived from the coin index, and takes the first free slot.
func fallbackCoin(rules CoinRules, index int, player entity.Rect) Spot {
	step := rules.Size.W
	if step <= 0 {
		step = 1
	}
	slots := int(rules.Area.W/step) + 1
	y := rules.Area.Y + rules.Area.H/2

	spot := Spot{X: rules.Area.X, Y: y}
	for k := 0; k < slots; k++ {
		spot.X = rules.Area.X + float64((index+k)%slots)*step
		if !coinBox(rules, spot).Overlaps(player) {
			return spot
		}
	}
	// The player covers the whole row; park the coin above the player's head.
	return Spot{X: player.X + player.W/2, Y: player.Y - rules.Size.H}
}

func coinBox(rules CoinRules, spot Spot) entity.Rect {
	return entity.CenteredRect(spot.X, spot.Y, rules.Size.W, rules.Size.H)
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stomp/internal/domain/entity"
)

func TestWorld_Snapshot(t *testing.T) {
	w := NewWorld(createTestWorldConfig(), 12345)
	w.addGoomba(500)
	tu := w.addTurtle(600)

	snap := w.Snapshot()

	assert.Equal(t, entity.Rect{X: 100, Y: 450, W: 40, H: 50}, snap.Player.Box)
	assert.Equal(t, HUD{Lives: 3, Coins: 0, Score: 0, GameOver: false}, snap.HUD)

	require.Len(t, snap.Enemies, 2)
	assert.Equal(t, "goomba", snap.Enemies[0].Kind)
	assert.Equal(t, "brown", snap.Enemies[0].Variant)
	assert.Equal(t, "turtle", snap.Enemies[1].Kind)
	assert.Equal(t, "walking", snap.Enemies[1].Variant)
	assert.Equal(t, tu.ID(), snap.Enemies[1].ID)

	kinds := map[string]int{}
	for _, pk := range snap.Pickups {
		kinds[pk.Kind]++
	}
	assert.Equal(t, map[string]int{"coin": 10, "mushroom": 1, "life-mushroom": 1, "star": 1}, kinds)
}

func TestWorld_SnapshotIsACopy(t *testing.T) {
	w := NewWorld(createTestWorldConfig(), 12345)
	snap := w.Snapshot()

	snap.Pickups[0].Active = false
	snap.Pickups[0].Box.X = -999

	again := w.Snapshot()
	assert.True(t, again.Pickups[0].Active)
	assert.NotEqual(t, -999.0, again.Pickups[0].Box.X)
}

func TestStats_Score(t *testing.T) {
	s := Stats{CoinsCollected: 12, EnemiesDefeated: 2, Ticks: 600}
	assert.Equal(t, 1200+400+10, s.Score())
}

func BenchmarkWorld_Tick(b *testing.B) {
	cfg := createTestWorldConfig()
	cfg.Player.Lives = 1 << 30
	w := NewWorld(cfg, 12345)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Tick(entity.Input{Right: i%120 < 60, Left: i%120 >= 60, Jump: i%40 == 0}, testDT)
	}
}

func BenchmarkWorld_Snapshot(b *testing.B) {
	w := NewWorld(createTestWorldConfig(), 12345)
	idle(w, 600)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Snapshot()
	}
}

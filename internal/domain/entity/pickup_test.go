package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryCollect_Coin(t *testing.T) {
	c := NewCoin(10, 300, 460, Size{W: 30, H: 30})
	p := createTestPlayer(100)

	assert.True(t, TryCollect(c, p))
	assert.False(t, TryCollect(c, p), "a coin is collected at most once")
	assert.Equal(t, 1, p.Coins)
	assert.False(t, c.Available())
}

func TestTryCollect_Mushroom(t *testing.T) {
	t.Run("growth mushroom grows the player", func(t *testing.T) {
		m := NewMushroom(11, 600, 440, Size{W: 30, H: 30}, false, 10, 20)
		m.Active = true
		p := createTestPlayer(100)

		assert.True(t, TryCollect(m, p))
		assert.Equal(t, SizeLarge, p.Size)
		assert.False(t, m.Active)
		assert.False(t, TryCollect(m, p))
	})

	t.Run("life mushroom adds a life", func(t *testing.T) {
		m := NewMushroom(12, 700, 440, Size{W: 30, H: 30}, true, 10, 20)
		m.Active = true
		p := createTestPlayer(100)

		assert.True(t, TryCollect(m, p))
		assert.Equal(t, 4, p.Lives)
		assert.Equal(t, SizeSmall, p.Size)
		assert.Equal(t, PickupLifeMushroom, m.Kind())
	})

	t.Run("hidden mushroom cannot be collected", func(t *testing.T) {
		m := NewMushroom(11, 600, 440, Size{W: 30, H: 30}, false, 10, 20)
		p := createTestPlayer(100)

		assert.False(t, TryCollect(m, p))
		assert.Equal(t, SizeSmall, p.Size)
	})
}

func TestMushroom_Lifecycle(t *testing.T) {
	m := NewMushroom(11, 600, 440, Size{W: 30, H: 30}, false, 0.5, 20)

	assert.False(t, m.MaybeActivate(testDT, fixedRand{f: 0.5}), "roll above the per-tick chance")
	assert.False(t, m.Active)

	assert.True(t, m.MaybeActivate(testDT, fixedRand{f: 0}))
	assert.True(t, m.Active)
	assert.Equal(t, 0.5, m.Remaining)

	assert.False(t, m.MaybeActivate(testDT, fixedRand{f: 0}), "already visible")

	for i := 0; i < 31; i++ {
		Tick(m, testDT)
	}
	assert.False(t, m.Active)
	assert.Equal(t, 0.0, m.Remaining)
}

func TestTryCollect_Star(t *testing.T) {
	s := NewStar(13, 650, 440, Size{W: 30, H: 30}, 8)
	p := createTestPlayer(100)

	assert.True(t, s.Available())
	assert.True(t, TryCollect(s, p))
	assert.True(t, p.Invincible)
	assert.Equal(t, 8.0, p.InvincibleTime)

	assert.False(t, TryCollect(s, p), "star is single use")
}

func TestPickupKind_String(t *testing.T) {
	tests := []struct {
		kind PickupKind
		want string
	}{
		{PickupCoin, "coin"},
		{PickupGrowthMushroom, "mushroom"},
		{PickupLifeMushroom, "life-mushroom"},
		{PickupStar, "star"},
		{PickupKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

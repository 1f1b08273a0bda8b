package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/stomp/internal/application/system"
	"github.com/younwookim/stomp/internal/domain/entity"
)

// fakeClock is advanced by hand
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func createTestCooldown(interval time.Duration) (*Cooldown, *fakeClock) {
	clock := newFakeClock()
	c := NewCooldown(interval)
	c.now = clock.now
	return c, clock
}

// recordingSink remembers every call in order
type recordingSink struct {
	calls []string
}

func (s *recordingSink) PlayCoin()   { s.calls = append(s.calls, "coin") }
func (s *recordingSink) PlayStomp()  { s.calls = append(s.calls, "stomp") }
func (s *recordingSink) PlayHit()    { s.calls = append(s.calls, "hit") }
func (s *recordingSink) StartMusic() { s.calls = append(s.calls, "start") }
func (s *recordingSink) StopMusic()  { s.calls = append(s.calls, "stop") }
func (s *recordingSink) PauseMusic(paused bool) {
	if paused {
		s.calls = append(s.calls, "pause")
		return
	}
	s.calls = append(s.calls, "resume")
}

func TestCooldown_Allow(t *testing.T) {
	c, clock := createTestCooldown(300 * time.Millisecond)

	assert.True(t, c.Allow(), "first trigger fires")

	clock.advance(100 * time.Millisecond)
	assert.False(t, c.Allow(), "within 300ms")

	clock.advance(199 * time.Millisecond)
	assert.False(t, c.Allow(), "suppressed trigger does not extend the window")

	clock.advance(1 * time.Millisecond)
	assert.True(t, c.Allow(), "300ms after the last sound")

	clock.advance(299 * time.Millisecond)
	assert.False(t, c.Allow())
}

func TestDispatcher_Handle(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 300*time.Millisecond)
	clock := newFakeClock()
	d.coin.now = clock.now

	d.Handle([]system.Event{
		system.CoinCollected{CoinID: 1, Tally: 1},
		system.CoinCollected{CoinID: 2, Tally: 2},
		system.ShellKicked{ID: 3, Dir: entity.DirRight},
		system.PlayerHit{By: entity.KindGoomba, Lives: 2},
		system.EnemySpawned{ID: 4, Kind: entity.KindTurtle},
	})
	assert.Equal(t, []string{"coin", "stomp", "hit"}, sink.calls)

	clock.advance(time.Second)
	sink.calls = nil
	d.Handle([]system.Event{system.CoinCollected{CoinID: 5, Tally: 3}})
	assert.Equal(t, []string{"coin"}, sink.calls)
}

func TestDispatcher_MusicLifecycle(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 0)

	d.Pause(true)
	assert.Empty(t, sink.calls, "pause before music starts is ignored")

	d.StartMusic()
	d.Pause(true)
	d.Pause(false)
	d.Handle([]system.Event{system.GameOver{}})
	d.Pause(true)

	assert.Equal(t, []string{"start", "pause", "resume", "stop"}, sink.calls)
}

func TestDispatcher_ToggleMusic(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 0)
	assert.True(t, d.MusicOn())

	d.StartMusic()
	assert.False(t, d.ToggleMusic())
	assert.False(t, d.MusicOn())

	d.Pause(true)
	d.StartMusic()
	assert.True(t, d.ToggleMusic())

	assert.Equal(t, []string{"start", "pause", "resume"}, sink.calls)
}

func TestDispatcher_ToggleMusicWhilePaused(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 0)

	d.StartMusic()
	d.Pause(true)
	assert.False(t, d.ToggleMusic())
	assert.True(t, d.ToggleMusic())
	assert.Equal(t, []string{"start", "pause"}, sink.calls, "loop stays quiet on the pause screen")

	d.Pause(false)
	assert.Equal(t, []string{"start", "pause", "resume"}, sink.calls)
}

func TestBeep(t *testing.T) {
	pcm := Beep(44100, 440, 0.1)
	assert.Len(t, pcm, 4410*4)

	// starts at zero crossing and channels match
	assert.Equal(t, byte(0), pcm[0])
	assert.Equal(t, pcm[4*100:4*100+2], pcm[4*100+2:4*100+4])
}

func TestNop(t *testing.T) {
	var s Sink = Nop{}
	d := NewDispatcher(s, 0)
	d.StartMusic()
	d.Handle([]system.Event{system.CoinCollected{}, system.GameOver{}})
}

// Package audio turns simulation events into sound effects and background music.
package audio

import (
	"time"

	"github.com/younwookim/stomp/internal/application/system"
)

// Sink plays sounds. Manager is the ebiten implementation, Nop the silent one.
type Sink interface {
	PlayCoin()
	PlayStomp()
	PlayHit()
	StartMusic()
	StopMusic()
	PauseMusic(paused bool)
}

// Dispatcher routes world events to a Sink and owns the music on/off switch
type Dispatcher struct {
	sink    Sink
	coin    *Cooldown
	musicOn bool
	playing bool
	paused  bool
}

// NewDispatcher creates a dispatcher with the given coin sound cooldown
func NewDispatcher(sink Sink, coinCooldown time.Duration) *Dispatcher {
	return &Dispatcher{
		sink:    sink,
		coin:    NewCooldown(coinCooldown),
		musicOn: true,
	}
}

// Handle plays the sounds for one tick's events
func (d *Dispatcher) Handle(events []system.Event) {
	for _, ev := range events {
		switch ev.(type) {
		case system.CoinCollected:
			if d.coin.Allow() {
				d.sink.PlayCoin()
			}
		case system.ShellKicked, system.EnemyDefeated:
			d.sink.PlayStomp()
		case system.PlayerHit:
			d.sink.PlayHit()
		case system.GameOver:
			d.StopMusic()
		}
	}
}

// StartMusic starts the background loop from the beginning if music is on
func (d *Dispatcher) StartMusic() {
	d.playing = true
	d.paused = false
	if d.musicOn {
		d.sink.StartMusic()
	}
}

// StopMusic stops the background loop
func (d *Dispatcher) StopMusic() {
	d.playing = false
	d.sink.StopMusic()
}

// Pause pauses or resumes the background loop
func (d *Dispatcher) Pause(paused bool) {
	d.paused = paused
	if d.musicOn && d.playing {
		d.sink.PauseMusic(paused)
	}
}

// ToggleMusic switches music on or off and returns the new setting.
// While paused only the setting changes; the loop resumes with Pause(false).
func (d *Dispatcher) ToggleMusic() bool {
	d.musicOn = !d.musicOn
	if d.playing && !d.paused {
		d.sink.PauseMusic(!d.musicOn)
	}
	return d.musicOn
}

// MusicOn reports whether music is enabled
func (d *Dispatcher) MusicOn() bool {
	return d.musicOn
}

// Nop is a Sink that plays nothing
type Nop struct{}

func (Nop) PlayCoin()       {}
func (Nop) PlayStomp()      {}
func (Nop) PlayHit()        {}
func (Nop) StartMusic()     {}
func (Nop) StopMusic()      {}
func (Nop) PauseMusic(bool) {}

package audio

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/stomp/internal/infrastructure/config"
)

// Effect file names looked up under the assets directory
const (
	coinFile  = "coin.wav"
	stompFile = "stomp.wav"
	hitFile   = "hit.wav"
)

// Manager plays effects and a looping background track through ebiten's audio context.
// Missing or broken files fall back to a synthesized beep (effects) or silence (music).
type Manager struct {
	ctx    *audio.Context
	coin   *audio.Player
	stomp  *audio.Player
	hit    *audio.Player
	music  *audio.Player
	logger *log.Logger
}

// NewManager loads effects from settings.Assets and the named music track.
// music may be empty for a stage without background music.
func NewManager(settings config.AudioSettings, music string, logger *log.Logger) *Manager {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(settings.SampleRate)
	}

	m := &Manager{ctx: ctx, logger: logger}

	m.coin = m.loadEffect(settings.Assets, coinFile, 1320, 0.08)
	m.stomp = m.loadEffect(settings.Assets, stompFile, 220, 0.1)
	m.hit = m.loadEffect(settings.Assets, hitFile, 140, 0.2)
	for _, p := range []*audio.Player{m.coin, m.stomp, m.hit} {
		p.SetVolume(settings.EffectVolume)
	}

	if music != "" {
		path := filepath.Join(settings.Assets, music)
		p, err := m.loadLoop(path)
		if err != nil {
			logger.Warn("music unavailable, playing without it", "path", path, "error", err)
		} else {
			p.SetVolume(settings.MusicVolume)
			m.music = p
		}
	}

	return m
}

func (m *Manager) loadEffect(dir, name string, freq, dur float64) *audio.Player {
	path := filepath.Join(dir, name)
	data, err := m.decode(path)
	if err != nil {
		m.logger.Warn("sound missing, using beep", "path", path, "error", err)
		data = Beep(m.ctx.SampleRate(), freq, dur)
	}
	return m.ctx.NewPlayerFromBytes(data)
}

// decode reads a wav file into 16-bit stereo PCM at the context's sample rate
func (m *Manager) decode(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(stream); err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

func (m *Manager) loadLoop(path string) (*audio.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}

	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("audio: cannot create player for %s: %w", path, err)
	}
	return p, nil
}

func (m *Manager) play(p *audio.Player) {
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		m.logger.Debug("rewind failed", "error", err)
	}
	p.Play()
}

func (m *Manager) PlayCoin()  { m.play(m.coin) }
func (m *Manager) PlayStomp() { m.play(m.stomp) }
func (m *Manager) PlayHit()   { m.play(m.hit) }

func (m *Manager) StartMusic() { m.play(m.music) }

func (m *Manager) StopMusic() {
	if m.music == nil {
		return
	}
	m.music.Pause()
	if err := m.music.Rewind(); err != nil {
		m.logger.Debug("music rewind failed", "error", err)
	}
}

func (m *Manager) PauseMusic(paused bool) {
	if m.music == nil {
		return
	}
	if paused {
		m.music.Pause()
		return
	}
	m.music.Play()
}

// Close releases the music stream
func (m *Manager) Close() error {
	if m.music == nil {
		return nil
	}
	return m.music.Close()
}

// Beep synthesizes a sine tone as 16-bit little-endian stereo PCM
func Beep(sampleRate int, freq, durSec float64) []byte {
	n := int(float64(sampleRate) * durSec)
	pcm := make([]byte, n*4)
	const amp = 0.35
	for i := 0; i < n; i++ {
		// fade out to avoid a click at the end
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * amp * env
		s := int16(v * 32767)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/younwookim/stomp/internal/application/replay"
	"github.com/younwookim/stomp/internal/application/scene"
	"github.com/younwookim/stomp/internal/application/state"
	"github.com/younwookim/stomp/internal/application/system"
	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/audio"
	"github.com/younwookim/stomp/internal/infrastructure/logging"
	"github.com/younwookim/stomp/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{92, 148, 252, 255}
	colorGround      = color.RGBA{200, 76, 12, 255}
	colorPlayer      = color.RGBA{216, 40, 0, 255}
	colorGoombaBrown = color.RGBA{152, 80, 24, 255}
	colorGoombaBlack = color.RGBA{40, 40, 40, 255}
	colorTurtle      = color.RGBA{0, 168, 0, 255}
	colorShell       = color.RGBA{0, 120, 64, 255}
	colorCoin        = color.RGBA{252, 188, 60, 255}
	colorMushroom    = color.RGBA{228, 92, 16, 255}
	colorLife        = color.RGBA{56, 200, 56, 255}
	colorStar        = color.RGBA{252, 252, 84, 255}
	colorPauseVeil   = color.RGBA{0, 0, 0, 128}
	colorGameOver    = color.RGBA{100, 0, 0, 180}
)

// InputSource supplies one tick of input. system.InputSystem is the keyboard implementation.
type InputSource interface {
	GetInput() system.InputState
}

// ScoreSink records finished runs. *storage.Store satisfies it.
type ScoreSink interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a Playing scene. World is required; every other field has a default.
type Options struct {
	World  *system.World
	Stage  string
	Jump   string
	Roster string

	// Background is a "#rrggbb" color
	Background string

	Input    InputSource
	Audio    *audio.Dispatcher
	Scores   ScoreSink
	Sprites  *Sprites
	Replayer *replay.Replayer
	Logger   *log.Logger

	// RecordPath enables recording; "" disables it
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	world    *system.World
	state    state.GameState
	input    InputSource
	audio    *audio.Dispatcher
	scores   ScoreSink
	sprites  *Sprites
	replayer *replay.Replayer
	logger   *log.Logger
	bg       color.Color

	stage  string
	jump   string
	roster string

	// Input recording
	recorder       *Recorder
	recordPath     string
	recordFilename string
	runs           int

	snap     system.Snapshot
	recorded bool
	lastRun  int64
}

// New creates a new Playing scene
func New(opts Options) *Playing {
	p := &Playing{
		world:          opts.World,
		state:          state.StatePlaying,
		input:          opts.Input,
		audio:          opts.Audio,
		scores:         opts.Scores,
		sprites:        opts.Sprites,
		replayer:       opts.Replayer,
		logger:         opts.Logger,
		bg:             colorBG,
		stage:          opts.Stage,
		jump:           opts.Jump,
		roster:         opts.Roster,
		recordPath:     opts.RecordPath,
	}

	if p.logger == nil {
		p.logger = logging.Discard()
	}
	if p.input == nil {
		p.input = system.NewInputSystem()
	}
	if p.audio == nil {
		p.audio = audio.NewDispatcher(audio.Nop{}, 0)
	}
	if opts.Background != "" {
		if c, err := colorful.Hex(opts.Background); err == nil {
			p.bg = c
		} else {
			p.logger.Warn("bad background color, using default", "color", opts.Background, "error", err)
		}
	}

	p.startRecording()
	p.snap = p.world.Snapshot()
	return p
}

func (p *Playing) startRecording() {
	if p.recordPath == "" || p.replayer != nil {
		p.recorder = nil
		return
	}
	p.runs++
	p.recordFilename = RunFilename(p.recordPath, p.runs)
	p.recorder = NewRecorder(p.world.Seed(), p.stage, p.jump, p.roster)
	p.logger.Info("recording enabled", "path", p.recordFilename, "seed", p.world.Seed())
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.input.GetInput()
	if in.Quit {
		return nil, scene.ErrQuit
	}
	if in.ToggleMusic {
		on := p.audio.ToggleMusic()
		p.logger.Debug("music toggled", "on", on)
	}

	switch p.state {
	case state.StatePlaying:
		if in.Pause {
			p.state = p.state.TogglePause()
			p.audio.Pause(true)
			return nil, nil
		}
		p.updatePlaying(in.Input, dt)
	case state.StatePaused:
		if in.Pause {
			p.state = p.state.TogglePause()
			p.audio.Pause(false)
		}
	case state.StateGameOver:
		if in.Restart {
			p.restart()
		}
	}

	return nil, nil
}

func (p *Playing) updatePlaying(intent entity.Input, dt float64) {
	if p.replayer != nil {
		ri, ok := p.replayer.GetInput()
		if !ok {
			// recording exhausted; the player stands still until the run ends
			ri = entity.Input{}
		}
		intent = ri
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(intent)
	}

	events := p.world.Tick(intent, dt)
	p.audio.Handle(events)
	p.logEvents(events)
	p.snap = p.world.Snapshot()

	if p.world.GameOver() {
		p.state = state.StateGameOver
		p.finishRun()
	}
}

func (p *Playing) logEvents(events []system.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case system.PlayerHit:
			p.logger.Debug("player hit", "by", e.By, "lives", e.Lives, "size", e.Size)
		case system.EnemySpawned:
			p.logger.Debug("enemy spawned", "id", e.ID, "kind", e.Kind)
		case system.EnemyDefeated:
			p.logger.Debug("enemy defeated", "id", e.ID, "kind", e.Kind, "shell", e.ByShell)
		case system.ShellKicked:
			p.logger.Debug("shell kicked", "id", e.ID, "dir", e.Dir)
		case system.ExtraLife:
			p.logger.Debug("extra life", "lives", e.Lives)
		case system.PowerUpAppeared:
			p.logger.Debug("power-up appeared", "kind", e.Kind)
		case system.PowerUpCollected:
			p.logger.Debug("power-up collected", "kind", e.Kind)
		case system.GameOver:
			p.logger.Info("game over", "score", e.Stats.Score(), "coins", e.Stats.CoinsCollected,
				"defeated", e.Stats.EnemiesDefeated, "ticks", e.Stats.Ticks)
		}
	}
}

// finishRun saves the recording and stores the run once per game
func (p *Playing) finishRun() {
	if p.recorded {
		return
	}
	p.recorded = true
	p.saveRecording()

	if p.scores == nil || p.replayer != nil {
		return
	}
	stats := p.world.Stats()
	id, err := p.scores.SaveRun(storage.Run{
		Stage:    p.stage,
		Seed:     p.world.Seed(),
		Jump:     p.jump,
		Score:    stats.Score(),
		Coins:    stats.CoinsCollected,
		Defeated: stats.EnemiesDefeated,
		Ticks:    stats.Ticks,
	})
	if err != nil {
		p.logger.Warn("could not save run", "error", err)
		return
	}
	p.lastRun = id
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	if err := p.recorder.Save(p.recordFilename); err != nil {
		p.logger.Warn("failed to save recording", "error", err)
		return
	}
	p.logger.Info("recording saved", "path", p.recordFilename, "frames", p.recorder.FrameCount())
}

func (p *Playing) restart() {
	p.world.Reset()
	if p.replayer != nil {
		p.replayer.Reset()
	}
	p.state = state.StatePlaying
	p.recorded = false
	p.startRecording()
	p.snap = p.world.Snapshot()
	p.audio.StartMusic()
}

// State returns the scene's current state
func (p *Playing) State() state.GameState {
	return p.state
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.bg)

	f := p.snap.Field
	p.drawGround(screen, f)
	for _, pk := range p.snap.Pickups {
		if pk.Active {
			p.drawEntity(screen, pk)
		}
	}
	for _, e := range p.snap.Enemies {
		if e.Active {
			p.drawEntity(screen, e)
		}
	}
	p.drawPlayer(screen)
	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawGround(screen *ebiten.Image, f entity.Playfield) {
	if img, ok := p.sprites.Get("ground"); ok {
		w := img.Bounds().Dx()
		for x := 0; x < int(f.Width); x += w {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), f.Ground)
			screen.DrawImage(img, op)
		}
		return
	}
	ebitenutil.DrawRect(screen, 0, f.Ground, f.Width, f.Height-f.Ground, colorGround)
}

func (p *Playing) drawEntity(screen *ebiten.Image, v system.EntityView) {
	keys := []string{v.Kind}
	if v.Variant != "" {
		keys = []string{v.Kind + "-" + v.Variant, v.Kind}
	}
	p.drawBox(screen, v.Box, v.Dir, entityColor(v), keys...)
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pv := p.snap.Player
	// blink at 5 Hz while invincible
	if pv.Invincible && int(pv.InvincibleTime*10)%2 == 0 {
		return
	}
	p.drawBox(screen, pv.Box, pv.Dir, colorPlayer, "player-"+pv.Size.String())
}

// drawBox draws the first available sprite stretched over box, or a filled rectangle
func (p *Playing) drawBox(screen *ebiten.Image, box entity.Rect, dir entity.Direction, c color.Color, keys ...string) {
	img, ok := p.sprites.Get(keys...)
	if !ok {
		ebitenutil.DrawRect(screen, box.X, box.Y, box.W, box.H, c)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
	if dir == entity.DirLeft {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(box.W, 0)
	}
	op.GeoM.Translate(box.X, box.Y)
	screen.DrawImage(img, op)
}

func entityColor(v system.EntityView) color.Color {
	switch v.Kind {
	case "goomba":
		if v.Variant == "black" {
			return colorGoombaBlack
		}
		return colorGoombaBrown
	case "turtle":
		if v.Variant == entity.TurtleWalking.String() {
			return colorTurtle
		}
		return colorShell
	case "coin":
		return colorCoin
	case "mushroom":
		return colorMushroom
	case "life-mushroom":
		return colorLife
	case "star":
		return colorStar
	default:
		return color.White
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	hud := p.snap.HUD
	text := fmt.Sprintf("LIVES %d   COINS %d   SCORE %d", hud.Lives, hud.Coins, hud.Score)
	if pv := p.snap.Player; pv.Invincible {
		text += fmt.Sprintf("   STAR %.1f", pv.InvincibleTime)
	}
	if p.replayer != nil {
		text += fmt.Sprintf("   REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
	ebitenutil.DebugPrintAt(screen, "A/D: Move | W/Space: Jump | P: Pause | M: Music | Q: Quit", 10, 26)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	f := p.snap.Field
	ebitenutil.DrawRect(screen, 0, 0, f.Width, f.Height, colorPauseVeil)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", int(f.Width)/2-50, int(f.Height)/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	f := p.snap.Field
	ebitenutil.DrawRect(screen, 0, 0, f.Width, f.Height, colorGameOver)

	s := p.snap.Stats
	text := fmt.Sprintf("GAME OVER\n\nScore: %d\nCoins: %d\nEnemies: %d\n\nPress Z to restart",
		s.Score(), s.CoinsCollected, s.EnemiesDefeated)
	ebitenutil.DebugPrintAt(screen, text, int(f.Width)/2-60, int(f.Height)/2-50)
}

// OnEnter starts the stage music
func (p *Playing) OnEnter() {
	p.audio.StartMusic()
}

// OnExit stops the music and saves any pending recording
func (p *Playing) OnExit() {
	p.audio.StopMusic()
	p.saveRecording()
}

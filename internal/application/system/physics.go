package system

import (
	"fmt"

	"github.com/younwookim/stomp/internal/domain/entity"
	"github.com/younwookim/stomp/internal/infrastructure/config"
)

// ImpulseJump launches at a fixed upward speed and integrates gravity every tick
type ImpulseJump struct {
	Impulse float64 // px/s
	Gravity float64 // px/s²
}

func (j ImpulseJump) Launch(p *entity.Player) {
	p.VY = -j.Impulse
}

func (j ImpulseJump) Advance(p *entity.Player, dt float64) bool {
	p.VY += j.Gravity * dt
	p.Y += p.VY * dt
	return false
}

func (j ImpulseJump) Rebound(p *entity.Player) {
	p.VY = -j.Impulse / 2
}

// ArcJump follows a frame counter that runs from +Counter down to -Counter.
// Positive counts lift the player by count*RiseStep px, negative counts drop it
// by |count|*FallStep px. It is frame-based and ignores dt.
type ArcJump struct {
	Counter  int
	RiseStep float64
	FallStep float64
}

func (j ArcJump) Launch(p *entity.Player) {
	p.JumpTick = j.Counter
	p.VY = 0
}

func (j ArcJump) Advance(p *entity.Player, _ float64) bool {
	c := p.JumpTick
	if c > 0 {
		p.Y -= float64(c) * j.RiseStep
	} else {
		p.Y += float64(-c) * j.FallStep
	}
	p.JumpTick--
	return p.JumpTick < -j.Counter
}

func (j ArcJump) Rebound(p *entity.Player) {
	p.JumpTick = j.Counter / 2
}

// NewJumpModel builds the jump strategy named by cfg.Model
func NewJumpModel(cfg config.JumpConfig, gravity float64) (entity.JumpModel, error) {
	switch cfg.Model {
	case "impulse":
		return ImpulseJump{Impulse: cfg.Impulse, Gravity: gravity}, nil
	case "arc":
		return ArcJump{Counter: cfg.ArcCounter, RiseStep: cfg.ArcRiseStep, FallStep: cfg.ArcFallStep}, nil
	default:
		return nil, fmt.Errorf("unknown jump model %q", cfg.Model)
	}
}

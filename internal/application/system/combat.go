package system

import (
	"github.com/younwookim/stomp/internal/domain/entity"
)

// resolvePlayerEnemies is step 3. It walks the enemies active at the start of
// the pass once; an enemy knocked out earlier in the pass is skipped.
func (w *World) resolvePlayerEnemies() {
	p := w.player
	for _, e := range append([]entity.Enemy(nil), w.enemies...) {
		if !e.Active() || !e.Box().Overlaps(p.Box()) {
			continue
		}

		switch e.OnPlayerContact(p) {
		case entity.ContactStomp:
			w.onStomp(e)
		case entity.ContactHit:
			w.emit(PlayerHit{By: e.Kind(), Lives: p.Lives, Size: p.Size})
			if p.IsDead() {
				w.gameOver = true
				w.emit(GameOver{Stats: w.stats})
				return
			}
			if w.cfg.HitGrace > 0 {
				p.ActivateInvincibility(w.cfg.HitGrace)
			}
		}
	}
}

func (w *World) onStomp(e entity.Enemy) {
	if t, ok := e.(*entity.Turtle); ok {
		w.emit(ShellKicked{ID: t.ID(), Dir: t.Dir})
		return
	}
	w.stats.EnemiesDefeated++
	w.emit(EnemyDefeated{ID: e.ID(), Kind: e.Kind()})
}

// resolveShells is step 4: projectile shells knock out walking enemies they touch
func (w *World) resolveShells() {
	snapshot := append([]entity.Enemy(nil), w.enemies...)
	for _, shell := range snapshot {
		if !isProjectile(shell) {
			continue
		}
		for _, target := range snapshot {
			if target == shell || !target.Walking() || !shell.Box().Overlaps(target.Box()) {
				continue
			}
			target.Deactivate()
			w.stats.EnemiesDefeated++
			w.emit(EnemyDefeated{ID: target.ID(), Kind: target.Kind(), ByShell: true})
		}
	}
}

func isProjectile(e entity.Enemy) bool {
	p, ok := e.(entity.Projectile)
	return ok && p.IsProjectile()
}

// resolveCoins is step 5. Reaching the threshold trades the tally for a life
// and replaces the whole coin set, ending the pass over the old set.
func (w *World) resolveCoins() {
	p := w.player
	for _, c := range w.coins {
		if !c.Available() || !c.Box().Overlaps(p.Box()) {
			continue
		}
		if !entity.TryCollect(c, p) {
			continue
		}
		w.stats.CoinsCollected++
		w.emit(CoinCollected{CoinID: c.ID(), Tally: p.Coins})

		if p.Coins == w.cfg.Coins.Threshold {
			p.Coins = 0
			p.GrantExtraLife()
			w.emit(ExtraLife{Lives: p.Lives})
			w.regenerateCoins()
			return
		}
	}

	remaining := w.coins[:0]
	for _, c := range w.coins {
		if c.Available() {
			remaining = append(remaining, c)
		}
	}
	w.coins = remaining
}

// updateMushrooms is step 6: expire, maybe reveal, then try to collect each mushroom
func (w *World) updateMushrooms(dt float64) {
	p := w.player
	for _, m := range w.mushrooms {
		entity.Tick(m, dt)
		if m.MaybeActivate(dt, w.rng) {
			w.emit(PowerUpAppeared{Kind: m.Kind()})
		}
		if m.Available() && m.Box().Overlaps(p.Box()) && entity.TryCollect(m, p) {
			w.emit(PowerUpCollected{Kind: m.Kind()})
			if m.Life {
				w.emit(ExtraLife{Lives: p.Lives})
			}
		}
	}
}

// resolveStar is step 7
func (w *World) resolveStar() {
	s := w.star
	if s == nil || !s.Available() || !s.Box().Overlaps(w.player.Box()) {
		return
	}
	if entity.TryCollect(s, w.player) {
		w.emit(PowerUpCollected{Kind: entity.PickupStar})
	}
}

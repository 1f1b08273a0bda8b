package system

import "github.com/younwookim/stomp/internal/domain/entity"

// Event is something that happened during a tick that the outside world may react to
type Event interface {
	isEvent()
}

// CoinCollected is emitted for every coin picked up
type CoinCollected struct {
	CoinID entity.EntityID
	Tally  int
}

func (CoinCollected) isEvent() {}

// ExtraLife is emitted when the player gains a life
type ExtraLife struct {
	Lives int
}

func (ExtraLife) isEvent() {}

// PlayerHit is emitted when an enemy hit changed the player's state
type PlayerHit struct {
	By    entity.EnemyKind
	Lives int
	Size  entity.SizeClass
}

func (PlayerHit) isEvent() {}

// EnemySpawned is emitted when the spawner adds an enemy
type EnemySpawned struct {
	ID   entity.EntityID
	Kind entity.EnemyKind
}

func (EnemySpawned) isEvent() {}

// EnemyDefeated is emitted when an enemy is knocked out by the player or a shell
type EnemyDefeated struct {
	ID      entity.EntityID
	Kind    entity.EnemyKind
	ByShell bool
}

func (EnemyDefeated) isEvent() {}

// ShellKicked is emitted when a turtle is stomped into a shell
type ShellKicked struct {
	ID  entity.EntityID
	Dir entity.Direction
}

func (ShellKicked) isEvent() {}

// PowerUpAppeared is emitted when a mushroom becomes visible
type PowerUpAppeared struct {
	Kind entity.PickupKind
}

func (PowerUpAppeared) isEvent() {}

// PowerUpCollected is emitted when a mushroom or star is consumed
type PowerUpCollected struct {
	Kind entity.PickupKind
}

func (PowerUpCollected) isEvent() {}

// GameOver is emitted once, on the tick the last life is lost
type GameOver struct {
	Stats Stats
}

func (GameOver) isEvent() {}

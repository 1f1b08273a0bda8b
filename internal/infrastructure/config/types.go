package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Jump     JumpConfig      `json:"jump"`
	Spawn    SpawnConfig     `json:"spawn"`
	Coins    CoinConfig      `json:"coins"`
	PowerUps PowerUpConfig   `json:"powerups"`
	Combat   CombatConfig    `json:"combat"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity float64 `json:"gravity"` // px/s², used by the impulse jump
}

// JumpConfig selects and tunes the jump model
type JumpConfig struct {
	Model          string  `json:"model"`          // "impulse" or "arc"
	Impulse        float64 `json:"impulse"`        // launch speed, px/s
	ArcCounter     int     `json:"arcCounter"`     // frames of rise (and of fall)
	ArcRiseStep    float64 `json:"arcRiseStep"`
	ArcFallStep    float64 `json:"arcFallStep"`
	StompTolerance float64 `json:"stompTolerance"`
}

type SpawnConfig struct {
	Interval        float64 `json:"interval"`        // seconds between spawn attempts
	MaxSimultaneous int     `json:"maxSimultaneous"`
	MaxLifetime     int     `json:"maxLifetime"`
}

type CoinConfig struct {
	Count             int `json:"count"`
	Threshold         int `json:"threshold"`
	PlacementAttempts int `json:"placementAttempts"`
}

type PowerUpConfig struct {
	MushroomDuration  float64 `json:"mushroomDuration"`
	MushroomMeanDelay float64 `json:"mushroomMeanDelay"`
	StarDuration      float64 `json:"starDuration"`
}

type CombatConfig struct {
	HitGrace float64 `json:"hitGrace"` // invincibility after a damaging hit, seconds
}

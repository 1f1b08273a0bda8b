package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Size        StageSizeConfig  `json:"size"`
	Ground      float64          `json:"ground"`
	PlayerSpawn PositionConfig   `json:"playerSpawn"`
	EnemySpawnX float64          `json:"enemySpawnX"`
	Roster      string           `json:"roster"`
	CoinArea    AreaConfig       `json:"coinArea"`
	Mushrooms   []MushroomConfig `json:"mushrooms"`
	Star        *PositionConfig  `json:"star"`
	Background  string           `json:"background"`
	Music       string           `json:"music"`
}

type StageSizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AreaConfig bounds the centers of randomly placed coins
type AreaConfig struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

type MushroomConfig struct {
	Kind string  `json:"kind"` // "growth" or "life"
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

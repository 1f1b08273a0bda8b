package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig             `json:"player"`
	Enemies EnemiesConfig            `json:"enemies"`
	Pickups PickupsConfig            `json:"pickups"`
	Rosters map[string][]RosterEntry `json:"rosters"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlayerConfig struct {
	ID    string     `json:"id"`
	Small SizeConfig `json:"small"`
	Large SizeConfig `json:"large"`
	Speed float64    `json:"speed"`
	Lives int        `json:"lives"`
}

type EnemiesConfig struct {
	Goomba GoombaConfig `json:"goomba"`
	Turtle TurtleConfig `json:"turtle"`
}

type GoombaConfig struct {
	Size      SizeConfig `json:"size"`
	Speed     float64    `json:"speed"`
	Stompable bool       `json:"stompable"`
	Variants  []string   `json:"variants"`
}

type TurtleConfig struct {
	Size        SizeConfig `json:"size"`
	ShellHeight float64    `json:"shellHeight"`
	Speed       float64    `json:"speed"`
	ShellSpeed  float64    `json:"shellSpeed"`
	StompedHold float64    `json:"stompedHold"`
}

type PickupsConfig struct {
	Coin     SizeConfig `json:"coin"`
	Mushroom SizeConfig `json:"mushroom"`
	Star     SizeConfig `json:"star"`
}

// RosterEntry is one weighted enemy variant in a spawn roster
type RosterEntry struct {
	Kind   string  `json:"kind"`
	Weight float64 `json:"weight"`
}

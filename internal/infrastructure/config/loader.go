package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded tuning configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game tuning from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.readJSON("physics.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.readJSON("entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.readJSON("stages/"+name+".json", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stage %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads and validates the base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Physics:  physics,
		Entities: entities,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}
	return cfg, nil
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Validate rejects tuning values the simulation cannot run with
func (c *GameConfig) Validate() error {
	p, e := c.Physics, c.Entities
	if p == nil || e == nil {
		return errors.New("physics and entities configs are required")
	}

	var errs []error
	if p.Display.Framerate <= 0 {
		errs = append(errs, errors.New("display.framerate must be positive"))
	}
	switch p.Jump.Model {
	case "impulse":
		if p.Jump.Impulse <= 0 || p.Physics.Gravity <= 0 {
			errs = append(errs, errors.New("impulse jump needs positive jump.impulse and physics.gravity"))
		}
	case "arc":
		if p.Jump.ArcCounter <= 0 {
			errs = append(errs, errors.New("arc jump needs positive jump.arcCounter"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown jump.model %q", p.Jump.Model))
	}
	if p.Spawn.Interval <= 0 {
		errs = append(errs, errors.New("spawn.interval must be positive"))
	}
	if p.Spawn.MaxSimultaneous < 0 || p.Spawn.MaxLifetime < 0 {
		errs = append(errs, errors.New("spawn caps must not be negative"))
	}
	if p.Coins.Count < 0 || p.Coins.Threshold <= 0 {
		errs = append(errs, errors.New("coins.count must not be negative and coins.threshold must be positive"))
	} else if p.Coins.Count > 0 && p.Coins.Threshold > p.Coins.Count {
		// a set smaller than the threshold is used up without ever regenerating
		errs = append(errs, fmt.Errorf("coins.threshold %d exceeds coins.count %d", p.Coins.Threshold, p.Coins.Count))
	}
	if !e.Player.Small.valid() || !e.Player.Large.valid() {
		errs = append(errs, errors.New("player sizes must be positive"))
	}
	if e.Player.Lives <= 0 {
		errs = append(errs, errors.New("player.lives must be positive"))
	}
	if !e.Enemies.Goomba.Size.valid() || !e.Enemies.Turtle.Size.valid() {
		errs = append(errs, errors.New("enemy sizes must be positive"))
	}
	if len(e.Rosters) == 0 {
		errs = append(errs, errors.New("at least one enemy roster is required"))
	}
	for name, roster := range e.Rosters {
		if len(roster) == 0 {
			errs = append(errs, fmt.Errorf("roster %q is empty", name))
		}
		for _, entry := range roster {
			if entry.Weight <= 0 {
				errs = append(errs, fmt.Errorf("roster %q: %s weight must be positive", name, entry.Kind))
			}
		}
	}
	return errors.Join(errs...)
}

// Validate checks the stage geometry
func (s *StageConfig) Validate() error {
	var errs []error
	if s.Size.Width <= 0 || s.Size.Height <= 0 {
		errs = append(errs, errors.New("size must be positive"))
	}
	if s.Ground <= 0 || s.Ground > s.Size.Height {
		errs = append(errs, fmt.Errorf("ground %.0f outside the stage", s.Ground))
	}
	if s.CoinArea.MinX > s.CoinArea.MaxX || s.CoinArea.MinY > s.CoinArea.MaxY {
		errs = append(errs, errors.New("coinArea min exceeds max"))
	}
	for _, m := range s.Mushrooms {
		if m.Kind != "growth" && m.Kind != "life" {
			errs = append(errs, fmt.Errorf("unknown mushroom kind %q", m.Kind))
		}
	}
	return errors.Join(errs...)
}

func (s SizeConfig) valid() bool {
	return s.Width > 0 && s.Height > 0
}

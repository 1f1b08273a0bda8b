package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// Settings holds per-user preferences that do not affect the simulation
type Settings struct {
	Window WindowSettings `yaml:"window"`
	Audio  AudioSettings  `yaml:"audio"`
	Log    LogSettings    `yaml:"log"`
	Scores ScoreSettings  `yaml:"scores"`
	Replay ReplaySettings `yaml:"replay"`
}

type WindowSettings struct {
	Scale int    `yaml:"scale"`
	Title string `yaml:"title"`
}

type AudioSettings struct {
	Enabled        bool    `yaml:"enabled"`
	Assets         string  `yaml:"assets"`
	MusicVolume    float64 `yaml:"musicVolume"`
	EffectVolume   float64 `yaml:"effectVolume"`
	CoinCooldownMs int     `yaml:"coinCooldownMs"`
	SampleRate     int     `yaml:"sampleRate"`
}

// CoinCooldown returns the minimum spacing between coin sounds
func (a AudioSettings) CoinCooldown() time.Duration {
	return time.Duration(a.CoinCooldownMs) * time.Millisecond
}

type LogSettings struct {
	Level string `yaml:"level"`
}

type ScoreSettings struct {
	DB string `yaml:"db"`
}

type ReplaySettings struct {
	Dir string `yaml:"dir"`
}

// DefaultSettings returns the hardcoded settings used when no YAML is readable.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{Scale: 1, Title: "Stomp"},
		Audio: AudioSettings{
			Enabled:        true,
			Assets:         "assets/sounds",
			MusicVolume:    0.3,
			EffectVolume:   0.15,
			CoinCooldownMs: 300,
			SampleRate:     44100,
		},
		Log:    LogSettings{Level: "info"},
		Scores: ScoreSettings{DB: "~/.stomp/scores.db"},
		Replay: ReplaySettings{Dir: "replays"},
	}
}

// LoadSettings loads user settings.
// Search order: customPath -> ~/.stomp/settings.yaml -> ./configs/settings.yaml -> embedded default
func LoadSettings(customPath string) (Settings, error) {
	cfg := DefaultSettings()

	// An explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read settings %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse settings %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userSettingsPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSettings()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "settings.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSettings()
	}

	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings(), nil
	}
	return cfg, nil
}

// userSettingsPath returns ~/.stomp/settings.yaml, or empty if home is unavailable.
func userSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stomp", "settings.yaml")
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thorny/internal/orbit"
)

const (
	DefaultFrames  = 3000
	DefaultFPS     = 30
	DefaultTrail   = 33
	DefaultTheme   = "minimal"
	DefaultDataDir = ".thorny"
)

// Config is read once at startup. Body count and seed feed sim.New; the
// rest only shape how a run is driven and drawn.
type Config struct {
	Seed    int64  `yaml:"seed"`
	Bodies  int    `yaml:"bodies"`
	Frames  int    `yaml:"frames"`
	FPS     int    `yaml:"fps"`
	Trail   int    `yaml:"trail"`
	Theme   string `yaml:"theme"`
	DataDir string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Seed:    orbit.DefaultSeed,
		Bodies:  orbit.DefaultCount,
		Frames:  DefaultFrames,
		FPS:     DefaultFPS,
		Trail:   DefaultTrail,
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Bodies < 1 {
		return fmt.Errorf("bodies must be at least 1, got %d", c.Bodies)
	}
	if c.Frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Trail < 0 {
		return fmt.Errorf("trail must be non-negative, got %d", c.Trail)
	}
	return nil
}

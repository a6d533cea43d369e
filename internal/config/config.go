package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortsim/internal/array"
	"github.com/san-kum/sortsim/internal/gate"
	"github.com/san-kum/sortsim/internal/sorting"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS   = 60
	DefaultTheme = "cyberpunk"
	MaxSize      = 1024
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm string        `yaml:"algorithm"`
	Size      int           `yaml:"size"`
	Max       int           `yaml:"max"`
	Shape     string        `yaml:"shape"`
	Seed      int64         `yaml:"seed"`
	Speed     int           `yaml:"speed"`
	Unit      time.Duration `yaml:"unit"`
	FPS       int           `yaml:"fps"`
	Theme     string        `yaml:"theme"`
	Verbose   bool          `yaml:"verbose"`
	LogFile   string        `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:  array.DefaultSize,
		Max:   array.DefaultMax,
		Shape: string(array.ShapeRandom),
		Speed: gate.DefaultSpeed,
		Unit:  gate.DefaultUnit,
		FPS:   DefaultFPS,
		Theme: DefaultTheme,
	}
}

// Load reads a yaml file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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
	if c.Size <= 0 || c.Size > MaxSize {
		return fmt.Errorf("%w: size must be in [1, %d], got %d", ErrInvalidConfig, MaxSize, c.Size)
	}
	if c.Max <= 0 {
		return fmt.Errorf("%w: max must be positive, got %d", ErrInvalidConfig, c.Max)
	}
	if _, err := array.ParseShape(c.Shape); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Speed < gate.MinSpeed || c.Speed > gate.MaxSpeed {
		return fmt.Errorf("%w: speed must be in [%d, %d], got %d", ErrInvalidConfig, gate.MinSpeed, gate.MaxSpeed, c.Speed)
	}
	if c.Unit < 0 {
		return fmt.Errorf("%w: unit must not be negative, got %v", ErrInvalidConfig, c.Unit)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: fps must be in [1, 240], got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Algorithm != "" {
		if _, err := sorting.NewRegistry().Get(c.Algorithm); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// NewState builds the array state described by the config.
func (c *Config) NewState() (*array.State, error) {
	return array.New(c.Size, c.Max, array.Shape(c.Shape), c.Seed)
}

// NewGate builds a gate with the configured speed and time unit.
func (c *Config) NewGate() *gate.Gate {
	return gate.New(c.Speed, c.Unit)
}

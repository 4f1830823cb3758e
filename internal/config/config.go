package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/molcalc/internal/calc"
	"github.com/san-kum/molcalc/internal/units"
)

const (
	DefaultConcentration = 1.0
	DefaultMolarMass     = 58.44
	DefaultVolume        = 500.0
	DefaultTheme         = "ocean"
)

type Config struct {
	Input  calc.Input   `yaml:"input"`
	Seed   int64        `yaml:"seed"`
	Theme  string       `yaml:"theme"`
	Logger LoggerConfig `yaml:"logger"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

func DefaultConfig() *Config {
	return &Config{
		Input: calc.Input{
			Concentration:     DefaultConcentration,
			ConcentrationUnit: units.Molar,
			MolarMass:         DefaultMolarMass,
			Volume:            DefaultVolume,
			VolumeUnit:        units.Milliliter,
		},
		Theme: DefaultTheme,
		Logger: LoggerConfig{
			Level:      "warn",
			Format:     "console",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Merge(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in the file at path onto cfg.
func Merge(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

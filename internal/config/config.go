package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/liftcalc/internal/units"
)

type Config struct {
	Units  UnitsConfig  `toml:"units"`
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
}

type UnitsConfig struct {
	Lift units.Unit `toml:"lift"` // Starting unit of the lift calculator.
	RPE  units.Unit `toml:"rpe"`  // Starting unit of the 1RM estimator.
}

type InputConfig struct {
	Expressions bool `toml:"expressions"` // Allow arithmetic in numeric fields.
}

type OutputConfig struct {
	Color bool `toml:"color"`
}

func Default() *Config {
	return &Config{
		Units:  UnitsConfig{Lift: units.KG, RPE: units.KG},
		Output: OutputConfig{Color: true},
	}
}

// Returns the path to the config file. LIFTCALC_CONFIG wins over the default location.
func GetConfigPath() (string, error) {
	if p := os.Getenv("LIFTCALC_CONFIG"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "liftcalc")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file, then applies .env and environment overrides.
// A missing config file is not an error.
func LoadConfig() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LIFTCALC_LIFT_UNIT"); v != "" {
		u, err := units.ParseUnit(v)
		if err != nil {
			return fmt.Errorf("LIFTCALC_LIFT_UNIT: %w", err)
		}
		c.Units.Lift = u
	}
	if v := os.Getenv("LIFTCALC_RPE_UNIT"); v != "" {
		u, err := units.ParseUnit(v)
		if err != nil {
			return fmt.Errorf("LIFTCALC_RPE_UNIT: %w", err)
		}
		c.Units.RPE = u
	}
	if v := os.Getenv("LIFTCALC_EXPRESSIONS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LIFTCALC_EXPRESSIONS: %w", err)
		}
		c.Input.Expressions = b
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.Color = false
	}
	return nil
}

func (c *Config) Validate() error {
	for name, u := range map[string]*units.Unit{"units.lift": &c.Units.Lift, "units.rpe": &c.Units.RPE} {
		parsed, err := units.ParseUnit(string(*u))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*u = parsed
	}
	return nil
}

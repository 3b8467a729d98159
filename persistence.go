package thermobox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/ghodss/yaml"
	"github.com/joho/godotenv"

	"github.com/alittlebrighter/thermobox/util"
)

// Environment variables that override the configuration file.
const (
	EnvTickInterval     = "THERMOBOX_TICK_INTERVAL"
	EnvSelfTestInterval = "THERMOBOX_SELFTEST_INTERVAL"
	EnvUnits            = "THERMOBOX_UNITS"
	EnvStep             = "THERMOBOX_STEP"
	EnvLogFile          = "THERMOBOX_LOG_FILE"
)

// ReadConfig reads a YAML configuration on top of DefaultConfig.  A missing file is not an error; the
// defaults are used instead.  Environment overrides are applied before validation.
func ReadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		dat, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err = yaml.Unmarshal(dat, config); err != nil {
				return nil, fmt.Errorf("could not parse %s: %w", path, err)
			}
		}
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}

	if problem := config.Validate(); problem != "" {
		return nil, fmt.Errorf("invalid configuration: %s", problem)
	}

	return config, nil
}

// SaveConfig writes the configuration as YAML.
func SaveConfig(path string, config *Config) error {
	dat, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, dat, os.FileMode(int(0660)))
}

// LoadEnvFile adds the variables of a dotenv file to the environment.  Variables that are already set win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("could not load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides configuration values from THERMOBOX_* environment variables.
func (cfg *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvTickInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		cfg.TickInterval = util.Duration(d)
	}

	if v, ok := os.LookupEnv(EnvSelfTestInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSelfTestInterval, err)
		}
		cfg.SelfTest.Interval = util.Duration(d)
	}

	if v, ok := os.LookupEnv(EnvUnits); ok {
		units, err := util.ParseUnits(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvUnits, err)
		}
		cfg.UnitPreference = units
	}

	if v, ok := os.LookupEnv(EnvStep); ok {
		step, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStep, err)
		}
		cfg.Controller.Step = step
	}

	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}

	return nil
}

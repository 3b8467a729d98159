package thermobox

import (
	"fmt"
	"time"

	"github.com/alittlebrighter/thermobox/controller"
	"github.com/alittlebrighter/thermobox/selftest"
	"github.com/alittlebrighter/thermobox/util"
)

// Config holds everything needed to run a simulated temperature controller.
type Config struct {
	Controller     controller.Limits     `json:"controller"`
	TickInterval   util.Duration         `json:"tickInterval"`
	SelfTest       SelfTestConfig        `json:"selfTest"`
	UnitPreference util.TemperatureUnits `json:"unitPreference"`
	EventBuffer    uint                  `json:"eventBuffer"`
	LogFile        string                `json:"logFile,omitempty"`
}

// SelfTestConfig sets how fast the startup self-test progresses.
type SelfTestConfig struct {
	Interval util.Duration `json:"interval"`
	Step     int           `json:"step"`
}

// DefaultConfig ticks every 100ms in steps of 0.1°C between -4°C and 20°C after a 1s self-test.
func DefaultConfig() *Config {
	return &Config{
		Controller:   controller.DefaultLimits(),
		TickInterval: util.Duration(100 * time.Millisecond),
		SelfTest: SelfTestConfig{
			Interval: util.Duration(50 * time.Millisecond),
			Step:     selftest.DefaultStep,
		},
		UnitPreference: util.Celsius,
		EventBuffer:    60,
	}
}

// Validate checks that a configuration can be run and returns a string explaining any issues.  An empty
// string denotes a valid configuration.
func (cfg *Config) Validate() string {
	if err := cfg.Controller.Validate(); err != nil {
		return "Controller limits are not valid: " + err.Error() + "."
	}

	switch {
	case cfg.TickInterval <= 0:
		return "tickInterval must be positive."
	case cfg.SelfTest.Interval <= 0:
		return "selfTest.interval must be positive."
	case cfg.SelfTest.Step <= 0 || cfg.SelfTest.Step > selftest.Complete:
		return fmt.Sprintf("selfTest.step must be between 1 and %d.", selftest.Complete)
	case cfg.UnitPreference != util.Celsius && cfg.UnitPreference != util.Fahrenheit:
		return fmt.Sprintf("unitPreference %q is not valid.", cfg.UnitPreference)
	case cfg.EventBuffer == 0:
		return "eventBuffer must hold at least one event."
	}

	return ""
}

// NewController builds the controller described by the configuration.
func (cfg *Config) NewController() (*controller.Simulated, error) {
	return controller.New(cfg.Controller)
}

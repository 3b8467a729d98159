package thermometer

import (
	"errors"

	"github.com/alittlebrighter/thermobox/controller"
	"github.com/alittlebrighter/thermobox/util"
)

var ErrNoSource = errors.New("thermometer has no temperature source")

// Thermometer defines the basic functions needed of a thermometer.
type Thermometer interface {
	ReadTemperature() (float64, util.TemperatureUnits, error)
	Shutdown()
}

// Simulated reads the temperature straight from a simulated controller.
type Simulated struct {
	source controller.Controller
}

// NewSimulated is the constructor for a thermometer attached to c.
func NewSimulated(c controller.Controller) *Simulated {
	return &Simulated{source: c}
}

// ReadTemperature returns the controller's current temperature in Celsius.
func (meter *Simulated) ReadTemperature() (float64, util.TemperatureUnits, error) {
	if meter.source == nil {
		return 0, util.Celsius, ErrNoSource
	}
	return meter.source.Temperature(), util.Celsius, nil
}

// Shutdown detaches the thermometer from its controller.
func (meter *Simulated) Shutdown() {
	meter.source = nil
}

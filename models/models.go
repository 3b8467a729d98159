package models

import (
	"fmt"
	"time"

	"github.com/alittlebrighter/thermobox/controller"
	"github.com/alittlebrighter/thermobox/util"
)

// Status is a point-in-time snapshot of a controller.
type Status struct {
	State       controller.State           `json:"state"`
	Direction   controller.ThermoDirection `json:"direction"`
	Temperature Temperature                `json:"temperature"`
	Locked      bool                       `json:"transportLocked"`
	Running     bool                       `json:"running"`
	Timestamp   time.Time                  `json:"timestamp"`
}

type Temperature struct {
	Degrees float64               `json:"degrees"`
	Unit    util.TemperatureUnits `json:"unit"`
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.1f%s", t.Degrees, t.Unit.Symbol())
}

// NewStatus snapshots c with the temperature expressed in units.
func NewStatus(c controller.Controller, units util.TemperatureUnits) Status {
	return Status{
		State:       c.State(),
		Direction:   c.Direction(),
		Temperature: Temperature{Degrees: util.Convert(c.Temperature(), units), Unit: units},
		Locked:      c.Locked(),
		Running:     c.Running(),
		Timestamp:   time.Now(),
	}
}

package controller

import (
	"errors"
	"math"
)

// Resolution is the smallest temperature change the simulation represents, in degrees Celsius.
const Resolution = 0.1

var (
	ErrInvalidStep        = errors.New("step must be a positive multiple of 0.1")
	ErrOffResolution      = errors.New("min, max and initial temperatures must be multiples of 0.1")
	ErrInvalidBounds      = errors.New("minimum temperature must be below maximum")
	ErrInitialOutOfBounds = errors.New("initial temperature is outside of the bounds")
)

// Limits defines the simulated temperature range and the change applied per tick.  All values are in
// degrees Celsius.
type Limits struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Initial float64 `json:"initial"`
	Step    float64 `json:"step"`
}

// DefaultLimits cools down to -4.0 and warms up to 20.0 in steps of 0.1, starting at 20.0.
func DefaultLimits() Limits {
	return Limits{Min: -4, Max: 20, Initial: 20, Step: 0.1}
}

// Validate returns nil when the limits can drive a controller.  Every value must sit on the 0.1 grid.
func (l Limits) Validate() error {
	if !onResolution(l.Step) || toTenths(l.Step) < 1 {
		return ErrInvalidStep
	}
	if !onResolution(l.Min) || !onResolution(l.Max) || !onResolution(l.Initial) {
		return ErrOffResolution
	}
	if toTenths(l.Min) >= toTenths(l.Max) {
		return ErrInvalidBounds
	}
	if toTenths(l.Initial) < toTenths(l.Min) || toTenths(l.Initial) > toTenths(l.Max) {
		return ErrInitialOutOfBounds
	}
	return nil
}

// Simulated is a temperature controller without hardware behind it.  The temperature moves by one step per
// Tick in the active direction and stops on the bound it is heading for.
//
// Temperatures are kept in tenths of a degree so repeated steps land exactly on the bounds.
type Simulated struct {
	min, max, step  int
	initial         int
	temperature     int
	direction       ThermoDirection
	transportLocked bool
	running         bool
}

// New builds an idle, unlocked controller at the initial temperature.
func New(limits Limits) (*Simulated, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	return &Simulated{
		min:         toTenths(limits.Min),
		max:         toTenths(limits.Max),
		step:        toTenths(limits.Step),
		initial:     toTenths(limits.Initial),
		temperature: toTenths(limits.Initial),
		direction:   None,
	}, nil
}

// NewDefault builds a controller with DefaultLimits.
func NewDefault() *Simulated {
	c, _ := New(DefaultLimits())
	return c
}

// Temperature is the current simulated temperature in degrees Celsius.
func (c *Simulated) Temperature() float64 {
	return fromTenths(c.temperature)
}

func (c *Simulated) State() State {
	switch {
	case c.transportLocked:
		return StateLocked
	case c.direction == Heating:
		return StateHeating
	case c.direction == Cooling:
		return StateCooling
	default:
		return StateIdle
	}
}

func (c *Simulated) Direction() ThermoDirection {
	return c.direction
}

// Running reports whether the controller expects Tick to be called.
func (c *Simulated) Running() bool {
	return c.running
}

// Locked reports whether transport mode is on.
func (c *Simulated) Locked() bool {
	return c.transportLocked
}

func (c *Simulated) Limits() Limits {
	return Limits{
		Min:     fromTenths(c.min),
		Max:     fromTenths(c.max),
		Initial: fromTenths(c.initial),
		Step:    fromTenths(c.step),
	}
}

// StartHeating warms up towards the maximum.  Ignored in transport mode or when already heating.
func (c *Simulated) StartHeating() {
	c.start(Heating)
}

// StartCooling cools down towards the minimum.  Ignored in transport mode or when already cooling.
func (c *Simulated) StartCooling() {
	c.start(Cooling)
}

func (c *Simulated) start(d ThermoDirection) {
	if c.transportLocked || (c.running && c.direction == d) {
		return
	}

	c.direction = d
	c.running = true
}

// Lock enters transport mode and halts any change in progress.  Progress is not resumed on Unlock.
func (c *Simulated) Lock() {
	c.transportLocked = true
	c.halt()
}

// Unlock leaves transport mode.
func (c *Simulated) Unlock() {
	c.transportLocked = false
}

// Tick advances the temperature by one step.  Reaching the bound in the active direction clamps the
// temperature to it and returns the controller to idle.
func (c *Simulated) Tick() {
	if !c.running {
		return
	}

	next := c.temperature + int(c.direction)*c.step
	switch {
	case c.direction == Cooling && next <= c.min:
		c.temperature = c.min
		c.halt()
	case c.direction == Heating && next >= c.max:
		c.temperature = c.max
		c.halt()
	default:
		c.temperature = next
	}
}

func (c *Simulated) halt() {
	c.running = false
	c.direction = None
}

func toTenths(celsius float64) int {
	return int(math.Round(celsius / Resolution))
}

func fromTenths(tenths int) float64 {
	return float64(tenths) / 10
}

func onResolution(celsius float64) bool {
	tenths := celsius / Resolution
	return math.Abs(tenths-math.Round(tenths)) <= 1e-9
}

package controller

// Controller is the surface a presentation layer drives. Commands never fail;
// a command that does not apply to the current state is ignored.
type Controller interface {
	Temperature() float64
	State() State
	Direction() ThermoDirection
	Running() bool
	Locked() bool
	Limits() Limits

	StartHeating()
	StartCooling()
	Lock()
	Unlock()
	Tick()
}

// ThermoDirection is the sign of the active temperature change.
type ThermoDirection int8

const (
	Cooling ThermoDirection = -1
	None    ThermoDirection = 0
	Heating ThermoDirection = 1
)

func (d ThermoDirection) String() string {
	switch d {
	case Heating:
		return "heating"
	case Cooling:
		return "cooling"
	default:
		return "none"
	}
}

func (d ThermoDirection) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// State is the externally visible mode of a controller.
type State uint8

const (
	StateIdle State = iota
	StateHeating
	StateCooling
	StateLocked
)

func (s State) String() string {
	switch s {
	case StateHeating:
		return "heating"
	case StateCooling:
		return "cooling"
	case StateLocked:
		return "locked"
	default:
		return "idle"
	}
}

func (s State) MarshalText() (text []byte, err error) {
	return []byte(s.String()), nil
}

// Active reports whether the temperature is currently being changed.
func (s State) Active() bool {
	return s == StateHeating || s == StateCooling
}

package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alittlebrighter/thermobox"
	"github.com/alittlebrighter/thermobox/controller"
	"github.com/alittlebrighter/thermobox/selftest"
	"github.com/alittlebrighter/thermobox/thermometer"
	"github.com/alittlebrighter/thermobox/util"
)

type phase int

const (
	phaseSelfTest phase = iota
	phaseControl
)

// Messages for the two periodic sources
type selfTestTickMsg struct{}

// controlTickMsg carries the sequence number it was scheduled with
type controlTickMsg struct{ seq int }

// Model is the main Bubbletea model
type Model struct {
	phase    phase
	selfTest *selftest.Progress
	control  controller.Controller
	meter    thermometer.Thermometer
	events   *util.RingBuffer
	progress progress.Model

	units            util.TemperatureUnits
	tickInterval     time.Duration
	selfTestInterval time.Duration

	// ticking is set while the controlTickMsg numbered tickSeq is scheduled
	ticking bool
	tickSeq int
	width   int
}

// New creates a Model that runs the self-test and then drives c.
func New(c controller.Controller, cfg *thermobox.Config) Model {
	return Model{
		phase:            phaseSelfTest,
		selfTest:         selftest.New(cfg.SelfTest.Step),
		control:          c,
		meter:            thermometer.NewSimulated(c),
		events:           util.NewRingBuffer(cfg.EventBuffer),
		progress:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultWidth)),
		units:            cfg.UnitPreference,
		tickInterval:     cfg.TickInterval.Std(),
		selfTestInterval: cfg.SelfTest.Interval.Std(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	log.Println("Starting self-test.")
	return m.tickSelfTest()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(10, min(msg.Width-4, defaultWidth))
		return m, nil

	case selfTestTickMsg:
		if m.phase != phaseSelfTest {
			return m, nil
		}
		if !m.selfTest.Tick() {
			return m, m.tickSelfTest()
		}
		m.phase = phaseControl
		log.Printf("Self-test complete, temperature %s.", m.formatTemperature())
		m.record()
		return m, nil

	case controlTickMsg:
		if msg.seq != m.tickSeq {
			return m, nil
		}
		m.ticking = false
		if m.control.Running() {
			m.apply(m.control.Tick)
		}
		return m.schedule()
	}

	return m, nil
}

// handleKeyPress forwards keys to the controller once the self-test is over
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "u":
		if m.units == util.Celsius {
			m.units = util.Fahrenheit
		} else {
			m.units = util.Celsius
		}
		return m, nil
	}

	if m.phase != phaseControl {
		return m, nil
	}

	switch msg.String() {
	case "w", "h":
		m.apply(m.control.StartHeating)
	case "c":
		m.apply(m.control.StartCooling)
	case "t":
		if m.control.Locked() {
			m.apply(m.control.Unlock)
		} else {
			m.apply(m.control.Lock)
		}
	}

	return m.schedule()
}

// schedule keeps exactly one control tick in flight while the controller runs.  A tick still pending when
// the controller halts is retired so a later start waits a full interval.
func (m Model) schedule() (tea.Model, tea.Cmd) {
	if !m.control.Running() {
		if m.ticking {
			m.ticking = false
			m.tickSeq++
		}
		return m, nil
	}
	if m.ticking {
		return m, nil
	}

	m.ticking = true
	seq := m.tickSeq
	return m, tea.Tick(m.tickInterval, func(time.Time) tea.Msg {
		return controlTickMsg{seq: seq}
	})
}

func (m Model) tickSelfTest() tea.Cmd {
	return tea.Tick(m.selfTestInterval, func(time.Time) tea.Msg {
		return selfTestTickMsg{}
	})
}

func (m Model) apply(transition func()) {
	from := m.control.State()
	before := m.control.Temperature()

	transition()

	to := m.control.State()
	if to != from {
		log.Printf("%s -> %s at %s.", from, to, m.formatTemperature())
	}
	if to != from || m.control.Temperature() != before {
		m.record()
	}
}

func (m Model) record() {
	temp, units, err := m.meter.ReadTemperature()
	if err != nil {
		log.Println("Error reading temperature: " + err.Error())
		return
	}

	m.events.Add(&util.EventLog{
		Timestamp:   time.Now(),
		Temperature: temp,
		Units:       units,
		State:       m.control.State(),
		Direction:   m.control.Direction(),
	})
}

func (m Model) formatTemperature() string {
	temp, _, err := m.meter.ReadTemperature()
	if err != nil {
		return "unknown"
	}
	return util.FormatTemperature(temp, m.units)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/alittlebrighter/thermobox/util"
)

const (
	defaultWidth = 40
	shownEvents  = 5
)

// View implements tea.Model
func (m Model) View() string {
	if m.phase == phaseSelfTest {
		return m.renderSelfTest()
	}
	return m.renderControl()
}

func (m Model) renderSelfTest() string {
	var b strings.Builder

	b.WriteString("Temperature Control\n\n")
	b.WriteString(fmt.Sprintf("Self-test %d%%\n", m.selfTest.Value()))
	b.WriteString(m.progress.ViewAs(m.selfTest.Fraction()))
	b.WriteString("\n\n")
	b.WriteString("q: quit")

	return b.String()
}

func (m Model) renderControl() string {
	var b strings.Builder

	b.WriteString("Temperature Control\n\n")
	b.WriteString(fmt.Sprintf("Actual temperature: %s\n", m.formatTemperature()))
	b.WriteString(fmt.Sprintf("State:              %s\n", m.control.State()))

	transport := "off"
	if m.control.Locked() {
		transport = "on (controls disabled)"
	}
	b.WriteString(fmt.Sprintf("Transport mode:     %s\n", transport))

	if events := m.events.GetAll(); len(events) > 0 {
		b.WriteString("\nRecent events\n")
		if len(events) > shownEvents {
			events = events[len(events)-shownEvents:]
		}
		for _, e := range events {
			b.WriteString("  ")
			b.WriteString(e.Timestamp.Format("15:04:05.000"))
			b.WriteString(" ")
			b.WriteString(util.FormatTemperature(e.Temperature, m.units))
			b.WriteString(" ")
			b.WriteString(e.State.String())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("w: warm up  c: cool down  t: transport  u: °C/°F  q: quit")

	return b.String()
}

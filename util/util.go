package util

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alittlebrighter/thermobox/controller"
)

type TemperatureUnits string

const (
	Celsius    TemperatureUnits = "Celsius"
	Fahrenheit TemperatureUnits = "Fahrenheit"
)

// ParseUnits accepts the full unit name or its first letter, in any case.
func ParseUnits(s string) (TemperatureUnits, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return "", fmt.Errorf("unknown temperature units %q", s)
}

// Symbol is the short form used when printing temperatures.
func (u TemperatureUnits) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// TempCToF converts temperature degrees from Celsius to Fahrenheit
func TempCToF(tempC float64) float64 {
	return tempC*9/5 + 32
}

// TempFToC converts temperature degrees from Fahrenheit to Celsius
func TempFToC(tempF float64) float64 {
	return (tempF - 32) * 5 / 9
}

// Convert expresses a Celsius temperature in the given units.
func Convert(tempC float64, units TemperatureUnits) float64 {
	if units == Fahrenheit {
		return TempCToF(tempC)
	}
	return tempC
}

// FormatTemperature prints a Celsius temperature with one decimal in the given units.
func FormatTemperature(tempC float64, units TemperatureUnits) string {
	return fmt.Sprintf("%.1f%s", Convert(tempC, units), units.Symbol())
}

// Duration reads and writes as a Go duration string such as "100ms".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"100ms\": %w", err)
	}

	parsed, err := time.ParseDuration(s)
	*d = Duration(parsed)
	return err
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type EventLog struct {
	Timestamp   time.Time                  `json:"timestamp"`
	Temperature float64                    `json:"temperature"`
	Units       TemperatureUnits           `json:"units"`
	State       controller.State           `json:"state"`
	Direction   controller.ThermoDirection `json:"direction"`
}

func (e *EventLog) String() string {
	return fmt.Sprintf("%s %s %s",
		e.Timestamp.Format("15:04:05.000"),
		FormatTemperature(e.Temperature, e.Units),
		e.State,
	)
}

type RingBuffer struct {
	buffer []*EventLog
	index  uint
}

func NewRingBuffer(size uint) *RingBuffer {
	if size == 0 {
		size = 1
	}
	return &RingBuffer{buffer: make([]*EventLog, size)}
}

func (buf *RingBuffer) Add(item *EventLog) {
	if buf.index == uint(len(buf.buffer)) {
		buf.index = 0
	}
	buf.buffer[buf.index] = item
	buf.index = buf.index + 1
}

// GetAll returns the stored events from oldest to newest.
func (buf *RingBuffer) GetAll() []*EventLog {
	all := make([]*EventLog, 0, len(buf.buffer))
	for _, e := range append(buf.buffer[buf.index:], buf.buffer[:buf.index]...) {
		if e != nil {
			all = append(all, e)
		}
	}
	return all
}

// GetLast returns the newest event, nil when nothing has been added.
func (buf *RingBuffer) GetLast() *EventLog {
	if buf.index == 0 {
		return buf.buffer[len(buf.buffer)-1]
	}

	return buf.buffer[buf.index-1]
}

// Len is the number of stored events.
func (buf *RingBuffer) Len() int {
	n := 0
	for _, e := range buf.buffer {
		if e != nil {
			n++
		}
	}
	return n
}

package util

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alittlebrighter/thermobox/controller"
)

func TestConversions(t *testing.T) {
	assert.Equal(t, 32.0, TempCToF(0))
	assert.Equal(t, 68.0, TempCToF(20))
	assert.Equal(t, 20.0, TempFToC(68))
	assert.Equal(t, -4.0, Convert(-4, Celsius))
	assert.InDelta(t, 24.8, Convert(-4, Fahrenheit), 1e-9)

	assert.Equal(t, "20.0°C", FormatTemperature(20, Celsius))
	assert.Equal(t, "-4.0°C", FormatTemperature(-4, Celsius))
	assert.Equal(t, "68.0°F", FormatTemperature(20, Fahrenheit))
}

func TestParseUnits(t *testing.T) {
	for in, want := range map[string]TemperatureUnits{
		"c":          Celsius,
		"Celsius":    Celsius,
		" F ":        Fahrenheit,
		"FAHRENHEIT": Fahrenheit,
	} {
		got, err := ParseUnits(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseUnits("kelvin")
	assert.Error(t, err)
}

func TestDurationJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"150ms"`), &d))
	assert.Equal(t, 150*time.Millisecond, d.Std())

	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`100`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}

func TestRingBuffer(t *testing.T) {
	buf := NewRingBuffer(3)
	assert.Nil(t, buf.GetLast())
	assert.Empty(t, buf.GetAll())
	assert.Equal(t, 0, buf.Len())

	events := make([]*EventLog, 5)
	for i := range events {
		events[i] = &EventLog{Temperature: float64(i), Units: Celsius, State: controller.StateCooling}
		buf.Add(events[i])
	}

	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, events[4], buf.GetLast())
	assert.Equal(t, []*EventLog{events[2], events[3], events[4]}, buf.GetAll())
}

func TestRingBufferPartiallyFilled(t *testing.T) {
	buf := NewRingBuffer(4)
	first := &EventLog{Temperature: 1}
	second := &EventLog{Temperature: 2}
	buf.Add(first)
	buf.Add(second)

	assert.Equal(t, []*EventLog{first, second}, buf.GetAll())
	assert.Equal(t, second, buf.GetLast())
}

func TestZeroSizeRingBufferKeepsLastEvent(t *testing.T) {
	buf := NewRingBuffer(0)
	e := &EventLog{Temperature: 3}
	buf.Add(e)
	assert.Equal(t, e, buf.GetLast())
}

func TestEventLogString(t *testing.T) {
	e := &EventLog{
		Timestamp:   time.Date(2024, 1, 1, 12, 30, 5, 0, time.UTC),
		Temperature: 10,
		Units:       Celsius,
		State:       controller.StateLocked,
	}
	assert.Equal(t, "12:30:05.000 10.0°C locked", e.String())
}

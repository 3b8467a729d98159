package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alittlebrighter/thermobox/controller"
	"github.com/alittlebrighter/thermobox/util"
)

func TestNewStatus(t *testing.T) {
	c := controller.NewDefault()
	c.StartCooling()
	c.Tick()

	status := NewStatus(c, util.Celsius)
	assert.Equal(t, controller.StateCooling, status.State)
	assert.Equal(t, controller.Cooling, status.Direction)
	assert.Equal(t, 19.9, status.Temperature.Degrees)
	assert.Equal(t, "19.9°C", status.Temperature.String())
	assert.True(t, status.Running)
	assert.False(t, status.Locked)
	assert.False(t, status.Timestamp.IsZero())
}

func TestStatusJSON(t *testing.T) {
	c := controller.NewDefault()
	c.Lock()

	b, err := json.Marshal(NewStatus(c, util.Fahrenheit))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "locked", decoded["state"])
	assert.Equal(t, "none", decoded["direction"])
	assert.Equal(t, true, decoded["transportLocked"])
	assert.Equal(t, false, decoded["running"])
	assert.Equal(t, map[string]interface{}{"degrees": 68.0, "unit": "Fahrenheit"}, decoded["temperature"])
}

package fluids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturationPressure(t *testing.T) {
	tests := []struct {
		theta float64 // degree C
		pVs   float64 // Pa
	}{
		{-20.0, 103.0},
		{0.0, 611.0},
		{20.0, 2339.0},
		{40.0, 7384.0},
	}
	for _, tt := range tests {
		assert.InEpsilon(t, tt.pVs, get_p_vs(tt.theta), 0.03, "p_vs at %.0f degC", tt.theta)
	}

	// strictly increasing over the working range
	prev := get_p_vs(-40.0)
	for theta := -39.0; theta <= 60.0; theta++ {
		cur := get_p_vs(theta)
		require.Greater(t, cur, prev)
		prev = cur
	}
}

func TestHumidityRatioRoundTrip(t *testing.T) {
	for _, w := range []float64{0.001, 0.005, 0.010, 0.020} {
		assert.InDelta(t, w, get_w(get_p_v(w)), 1e-9)
	}
}

func TestHumidAirFromRH(t *testing.T) {
	air, err := NewHumidAir(24.0, 50.0)
	require.NoError(t, err)

	assert.InEpsilon(t, 0.0093, air.W(), 0.05)
	assert.InEpsilon(t, 47.8e3, air.H(), 0.05)
	assert.InDelta(t, 50.0, air.RH(), 0.1)
	assert.InDelta(t, 12.9, air.DewPoint(), 1.0)
	assert.InDelta(t, 17.0, air.WetBulb(), 1.0)
}

func TestHumidAirFromW(t *testing.T) {
	air, err := NewHumidAirFromW(30.0, 0.010)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, air.Tdb(), 1e-12)
	assert.InDelta(t, 0.010, air.W(), 1e-12)
	assert.Less(t, air.RH(), 100.0)
}

func TestHumidAirFromTwb(t *testing.T) {
	air, err := NewHumidAirFromTwb(24.0, 17.0)
	require.NoError(t, err)
	// the wet bulb must be recovered from the state
	assert.InDelta(t, 17.0, air.WetBulb(), 0.1)
}

func TestHumidAirInvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		make func() error
	}{
		{"negative RH", func() error { _, err := NewHumidAir(20.0, -1.0); return err }},
		{"RH above 100", func() error { _, err := NewHumidAir(20.0, 101.0); return err }},
		{"negative W", func() error { _, err := NewHumidAirFromW(20.0, -0.001); return err }},
		{"supersaturated", func() error { _, err := NewHumidAirFromW(20.0, 0.100); return err }},
		{"wet bulb above dry bulb", func() error { _, err := NewHumidAirFromTwb(20.0, 25.0); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.make())
		})
	}
}

func TestAirMassFlowRate(t *testing.T) {
	assert.InDelta(t, 1.2, AirMassFlowRate(1.0), 1e-12)
	assert.InDelta(t, 3.0, AirMassFlowRate(2.5), 1e-12)
}

func TestSaturatedAirEnthalpyIncreasing(t *testing.T) {
	prev := SaturatedAirEnthalpy(-20.0)
	for theta := -19.0; theta <= 50.0; theta++ {
		cur := SaturatedAirEnthalpy(theta)
		require.Greater(t, cur, prev, "at %.0f degC", theta)
		prev = cur
	}
}

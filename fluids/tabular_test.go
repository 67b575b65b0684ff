package fluids

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateAtSaturationKnots(t *testing.T) {
	b := DefaultBackend()

	// the fits pass through the table rows
	st, err := b.State("R22", T(0.0), X(0.0))
	require.NoError(t, err)
	assert.InDelta(t, 200.0e3, st.H(), 1.0)
	assert.InDelta(t, 4.976e5, st.P(), 10.0)
	assert.InDelta(t, 1297.0, st.Rho(), 0.5)

	st, err = b.State("R22", T(0.0), X(1.0))
	require.NoError(t, err)
	assert.InDelta(t, 405.4e3, st.H(), 1.0)
	assert.InDelta(t, 21.26, st.Rho(), 0.05)
}

func TestClausiusRelationOnRows(t *testing.T) {
	b := DefaultBackend()
	for _, tb := range builtinTables {
		for i, theta := range tb.T {
			liq, err := b.State(tb.Name, T(theta), X(0.0))
			require.NoError(t, err)
			vap, err := b.State(tb.Name, T(theta), X(1.0))
			require.NoError(t, err)

			want := (tb.HG[i] - tb.HF[i]) / (theta + t_zero)
			assert.InDelta(t, want, vap.S()-liq.S(), 0.5,
				"%s at %.0f degC", tb.Name, theta)
		}
	}
}

func TestStateFromPressureAndQuality(t *testing.T) {
	b := DefaultBackend()

	sat, err := b.State("R134a", T(10.0), X(1.0))
	require.NoError(t, err)

	st, err := b.State("R134a", P(sat.P()), X(1.0))
	require.NoError(t, err)
	assert.InDelta(t, 10.0, st.T(), 0.05)
	assert.InDelta(t, sat.H(), st.H(), 100.0)
}

func TestStateFromPressureAndEnthalpy(t *testing.T) {
	b := DefaultBackend()
	sat0, err := b.State("R22", T(0.0), X(0.0))
	require.NoError(t, err)
	sat1, err := b.State("R22", T(0.0), X(1.0))
	require.NoError(t, err)
	p := sat0.P()

	t.Run("two-phase", func(t *testing.T) {
		h := 0.5 * (sat0.H() + sat1.H())
		st, err := b.State("R22", P(p), H(h))
		require.NoError(t, err)
		assert.InDelta(t, 0.5, st.X(), 0.01)
		assert.InDelta(t, 0.0, st.T(), 0.05)
	})

	t.Run("superheated", func(t *testing.T) {
		st, err := b.State("R22", P(p), H(sat1.H()+10e3))
		require.NoError(t, err)
		assert.Greater(t, st.T(), 0.0)
		assert.True(t, math.IsNaN(st.X()))
	})

	t.Run("subcooled", func(t *testing.T) {
		st, err := b.State("R22", P(p), H(sat0.H()-5e3))
		require.NoError(t, err)
		assert.Less(t, st.T(), 0.0)
		assert.True(t, math.IsNaN(st.X()))
	})
}

func TestIsentropicCompression(t *testing.T) {
	b := DefaultBackend()

	suction, err := b.State("R22", T(5.0), X(1.0))
	require.NoError(t, err)
	satCond, err := b.State("R22", T(50.0), X(1.0))
	require.NoError(t, err)

	discharge, err := b.State("R22", P(satCond.P()), S(suction.S()))
	require.NoError(t, err)

	assert.InDelta(t, suction.S(), discharge.S(), 1.0)
	assert.Greater(t, discharge.T(), 50.0, "discharge must be superheated")
	assert.Greater(t, discharge.H(), suction.H(), "compression adds enthalpy")
}

func TestQualityFromTemperatureAndEnthalpy(t *testing.T) {
	b := DefaultBackend()

	// liquid leaving the condenser, expanded isenthalpically to the
	// evaporation temperature
	liquid, err := b.State("R134a", T(35.0), X(0.0))
	require.NoError(t, err)

	mixture, err := b.State("R134a", T(-10.0), H(liquid.H()))
	require.NoError(t, err)
	assert.Greater(t, mixture.X(), 0.0)
	assert.Less(t, mixture.X(), 1.0)
	assert.InDelta(t, liquid.H(), mixture.H(), 1.0)
}

func TestStateErrors(t *testing.T) {
	b := DefaultBackend()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{
			"unknown fluid",
			func() error { _, err := b.State("R999", T(0), X(0)); return err },
			ErrUnknownFluid,
		},
		{
			"temperature below range",
			func() error { _, err := b.State("R22", T(-60), X(0.5)); return err },
			ErrOutOfRange,
		},
		{
			"quality above one",
			func() error { _, err := b.State("R22", T(0), X(1.5)); return err },
			ErrOutOfRange,
		},
		{
			"same property twice",
			func() error { _, err := b.State("R22", T(0), T(10)); return err },
			ErrUnsupportedInputPair,
		},
		{
			"enthalpy with entropy",
			func() error { _, err := b.State("R22", H(400e3), S(1700)); return err },
			ErrUnsupportedInputPair,
		},
		{
			"enthalpy outside dome for T-h pair",
			func() error { _, err := b.State("R22", T(0), H(500e3)); return err },
			ErrOutOfRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFluidNamesCaseInsensitive(t *testing.T) {
	b := DefaultBackend()
	for _, name := range []string{"r22", "R22", "r134a", "R134A"} {
		_, _, err := b.Limits(name)
		assert.NoError(t, err, name)
	}
}

func TestTableValidation(t *testing.T) {
	good := func() *SatTable {
		return &SatTable{
			Name: "X",
			T:    []float64{0, 10, 20},
			P:    []float64{1e5, 2e5, 3e5},
			RhoF: []float64{1000, 990, 980},
			RhoG: []float64{5, 7, 9},
			HF:   []float64{200e3, 210e3, 220e3},
			HG:   []float64{400e3, 405e3, 410e3},
			CpF:  []float64{1200, 1210, 1220},
			CpG:  []float64{700, 720, 740},
		}
	}
	tests := []struct {
		name string
		mod  func(tb *SatTable)
	}{
		{"temperatures not increasing", func(tb *SatTable) { tb.T = []float64{0, 10, 5} }},
		{"pressures not increasing", func(tb *SatTable) { tb.P = []float64{1e5, 3e5, 2e5} }},
		{"liquid enthalpies not increasing", func(tb *SatTable) { tb.HF = []float64{200e3, 220e3, 210e3} }},
		{"h_g below h_f", func(tb *SatTable) { tb.HG = []float64{400e3, 205e3, 410e3} }},
		{"column length mismatch", func(tb *SatTable) { tb.CpG = []float64{700, 720} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := good()
			tt.mod(tb)
			assert.Error(t, NewTabularBackend().Register(tb))
		})
	}
	assert.NoError(t, NewTabularBackend().Register(good()))
}

func TestFluidAndMixtures(t *testing.T) {
	t.Run("pure fluid", func(t *testing.T) {
		f, err := NewFluid("R22", nil)
		require.NoError(t, err)
		assert.Equal(t, "R22", f.Name())
		assert.False(t, f.Glide())
	})

	t.Run("unknown fluid", func(t *testing.T) {
		_, err := NewFluid("R999", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFluid)
	})

	t.Run("known blend resolves to pseudo-pure table", func(t *testing.T) {
		f, err := NewMixture("R32&R1234yf", []float64{0.689, 0.311}, nil)
		require.NoError(t, err)
		assert.Equal(t, "R454B", f.Name())
		assert.True(t, f.Glide())
	})

	t.Run("unknown blend", func(t *testing.T) {
		_, err := NewMixture("R32&R600a", []float64{0.5, 0.5}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownMixture)
	})

	t.Run("fraction count mismatch", func(t *testing.T) {
		_, err := NewMixture("R32&R1234yf", []float64{1.0}, nil)
		assert.Error(t, err)
	})

	t.Run("fractions must sum to one", func(t *testing.T) {
		_, err := NewMixture("R32&R1234yf", []float64{0.689, 0.411}, nil)
		assert.Error(t, err)
	})
}

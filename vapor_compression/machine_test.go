package vapor_compression

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac/fluids"
)

func newTestMachine(t *testing.T) *SingleStageVCMachine {
	t.Helper()

	evaAirIn, err := fluids.NewHumidAir(24.0, 50.0)
	require.NoError(t, err)
	conAirIn, err := fluids.NewHumidAir(40.0, 50.0)
	require.NoError(t, err)

	m, err := NewSingleStageVCMachine(MachineSpec{
		Compressor: newTestFixedSpeed(t),
		EpsEva:     0.6018,
		EpsCon:     0.7119,
		LTMassFlow: 1.097,
		HTMassFlow: 3.911,
		LTAirIn:    &evaAirIn,
		HTAirIn:    &conAirIn,
	})
	require.NoError(t, err)
	return m
}

func TestMachineSteadyState(t *testing.T) {
	m := newTestMachine(t)

	te, err := m.Te()
	require.NoError(t, err)
	tc, err := m.Tc()
	require.NoError(t, err)

	// the evaporation temperature settles below the room air, the
	// condensation temperature above the outside air
	assert.Greater(t, te, 0.0)
	assert.Less(t, te, m.LTAirIn().Tdb())
	assert.Greater(t, tc, m.HTAirIn().Tdb())
	assert.Less(t, tc, 58.0)

	perf, err := m.Performance()
	require.NoError(t, err)
	assert.Greater(t, perf.QcDot, 0.0)
	assert.Greater(t, perf.COP, 0.0)
	assert.InDelta(t, perf.QcDot+perf.WcDot, perf.QhDot, 1e-9)

	// both balance equations hold at the solved point
	assert.InDelta(t, perf.QcDot, m.evaCoil(te), 150.0, "evaporator balance")
	assert.InDelta(t, perf.QhDot, m.conCoil(tc), 150.0, "condenser balance")
}

func TestMachineAirOutletStates(t *testing.T) {
	m := newTestMachine(t)

	ltOut, err := m.LTAirOut()
	require.NoError(t, err)
	assert.Less(t, ltOut.Tdb(), m.LTAirIn().Tdb(), "evaporator cools the air")
	assert.LessOrEqual(t, ltOut.W(), m.LTAirIn().W(), "wet coil dehumidifies")
	assert.Less(t, ltOut.H(), m.LTAirIn().H())

	htOut, err := m.HTAirOut()
	require.NoError(t, err)
	assert.Greater(t, htOut.Tdb(), m.HTAirIn().Tdb(), "condenser heats the air")
	assert.InDelta(t, m.HTAirIn().W(), htOut.W(), 1e-12, "sensible heating only")

	// the air side energy balances close against the coil loads
	perf, err := m.Performance()
	require.NoError(t, err)
	assert.InDelta(t, perf.QcDot, 1.097*(m.LTAirIn().H()-ltOut.H()), 1.0)
}

func TestMachinePerformanceVsOutsideAir(t *testing.T) {
	m := newTestMachine(t)
	wIn := m.HTAirIn().W()

	var prevQc, prevCOP, prevTc float64
	for i, tOut := range []float64{28.0, 32.0, 36.0, 40.0} {
		air, err := fluids.NewHumidAirFromW(tOut, wIn)
		require.NoError(t, err)
		m.SetHTAirIn(air)
		require.NoError(t, m.Simulate())

		perf, err := m.Performance()
		require.NoError(t, err)
		tc, err := m.Tc()
		require.NoError(t, err)

		if i > 0 {
			// hotter outside air: less capacity, lower COP, higher Tc
			assert.Less(t, perf.QcDot, prevQc, "Qc at %.0f degC", tOut)
			assert.Less(t, perf.COP, prevCOP, "COP at %.0f degC", tOut)
			assert.Greater(t, tc, prevTc, "Tc at %.0f degC", tOut)
		}
		prevQc, prevCOP, prevTc = perf.QcDot, perf.COP, tc
	}
}

func TestMachineRequiresSimulation(t *testing.T) {
	evaAirIn, err := fluids.NewHumidAir(24.0, 50.0)
	require.NoError(t, err)

	m, err := NewSingleStageVCMachine(MachineSpec{
		Compressor: newTestFixedSpeed(t),
		EpsEva:     0.6018,
		EpsCon:     0.7119,
		LTMassFlow: 1.097,
		HTMassFlow: 3.911,
		LTAirIn:    &evaAirIn,
	})
	require.NoError(t, err)

	_, err = m.Te()
	assert.Error(t, err)
	assert.Error(t, m.Simulate(), "condenser inlet air not set")
}

func TestMachineSpecValidation(t *testing.T) {
	c := newTestFixedSpeed(t)
	tests := []struct {
		name string
		spec MachineSpec
	}{
		{"no compressor", MachineSpec{EpsEva: 0.6, EpsCon: 0.7, LTMassFlow: 1, HTMassFlow: 1}},
		{"effectiveness above one", MachineSpec{Compressor: c, EpsEva: 1.2, EpsCon: 0.7, LTMassFlow: 1, HTMassFlow: 1}},
		{"zero effectiveness", MachineSpec{Compressor: c, EpsEva: 0.6, EpsCon: 0.0, LTMassFlow: 1, HTMassFlow: 1}},
		{"negative air flow", MachineSpec{Compressor: c, EpsEva: 0.6, EpsCon: 0.7, LTMassFlow: -1, HTMassFlow: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSingleStageVCMachine(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestMachineFixedSpeedRejectsSetSpeed(t *testing.T) {
	m := newTestMachine(t)
	assert.Error(t, m.SetSpeed(50.0))
}

func TestMachineVariableSpeed(t *testing.T) {
	evaAirIn, err := fluids.NewHumidAir(24.0, 50.0)
	require.NoError(t, err)
	conAirIn, err := fluids.NewHumidAir(40.0, 50.0)
	require.NoError(t, err)

	m, err := NewSingleStageVCMachine(MachineSpec{
		Compressor: newTestVariableSpeed(t),
		EpsEva:     0.6018,
		EpsCon:     0.7119,
		LTMassFlow: 1.097,
		HTMassFlow: 3.911,
		LTAirIn:    &evaAirIn,
		HTAirIn:    &conAirIn,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, m.SetSpeed(120.0), ErrOutOfSpeedRange)

	var prevQc, prevWc, prevTe, prevTc float64
	for i, speed := range []float64{50.0, 75.0, 100.0} {
		require.NoError(t, m.SetSpeed(speed))
		require.NoError(t, m.Simulate())

		perf, err := m.Performance()
		require.NoError(t, err)
		te, err := m.Te()
		require.NoError(t, err)
		tc, err := m.Tc()
		require.NoError(t, err)

		if i > 0 {
			// a faster compressor moves more heat and pushes both coils
			// further from their air inlet temperatures
			assert.Greater(t, perf.QcDot, prevQc, "Qc at %.0f 1/s", speed)
			assert.Greater(t, perf.WcDot, prevWc, "Wc at %.0f 1/s", speed)
			assert.Less(t, te, prevTe, "Te at %.0f 1/s", speed)
			assert.Greater(t, tc, prevTc, "Tc at %.0f 1/s", speed)
		}
		prevQc, prevWc, prevTe, prevTc = perf.QcDot, perf.WcDot, te, tc
	}
}

func TestSweepRecorder(t *testing.T) {
	m := newTestMachine(t)
	wIn := m.HTAirIn().W()

	rec := NewSweepRecorder()
	for tOut := 28.0; tOut <= 40.0; tOut += 4.0 {
		air, err := fluids.NewHumidAirFromW(tOut, wIn)
		require.NoError(t, err)
		m.SetHTAirIn(air)
		require.NoError(t, m.Simulate())
		require.NoError(t, rec.Record(tOut, m))
	}
	assert.Equal(t, 4, rec.Len())

	cop := rec.Series("COP")
	require.Len(t, cop, 4)
	for i := 1; i < len(cop); i++ {
		assert.Less(t, cop[i], cop[i-1])
	}
	assert.Nil(t, rec.Series("no_such_series"))

	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, rec.WriteCSV(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRatingMap(t *testing.T) {
	c := newTestFixedSpeed(t)
	c.SetConditions(5.0, 50.0)

	te := []float64{-10.0, 0.0, 10.0}
	tc := []float64{40.0, 50.0}
	rm, err := NewRatingMap(c, te, tc)
	require.NoError(t, err)

	// conditions restored after rating
	assert.InDelta(t, 5.0, c.Te(), 1e-12)
	assert.InDelta(t, 50.0, c.Tc(), 1e-12)

	for i := range te {
		for j := range tc {
			assert.False(t, math.IsNaN(rm.QcDot.At(i, j)))
			if i > 0 {
				assert.Greater(t, rm.QcDot.At(i, j), rm.QcDot.At(i-1, j),
					"capacity grows with evaporation temperature")
			}
			if j > 0 {
				assert.Less(t, rm.QcDot.At(i, j), rm.QcDot.At(i, j-1),
					"capacity falls with condensation temperature")
			}
		}
	}

	path := filepath.Join(t.TempDir(), "rating.csv")
	require.NoError(t, rm.WriteCSV(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac/fluids"
)

func testCycle(t *testing.T) *StandardVaporCompressionCycle {
	t.Helper()
	r22, err := fluids.NewFluid("R22", nil)
	require.NoError(t, err)
	return &StandardVaporCompressionCycle{
		Refrigerant:          r22,
		Te:                   5.0,
		Tc:                   50.0,
		EvaporatorSuperheat:  10.0,
		SuctionLineSuperheat: 5.0,
		Subcooling:           5.0,
		EtaIs:                0.72,
	}
}

func TestCyclePoints(t *testing.T) {
	cy := testCycle(t)
	pts, err := cy.Points()
	require.NoError(t, err)

	// two pressure levels only
	pe := pts.EvaporatorOut.P()
	pc := pts.SatVaporCond.P()
	assert.Greater(t, pc, pe)
	assert.InDelta(t, pe, pts.EvaporatorIn.P(), 1.0)
	assert.InDelta(t, pe, pts.Suction.P(), 1.0)
	assert.InDelta(t, pc, pts.Discharge.P(), 1.0)
	assert.InDelta(t, pc, pts.CondenserOut.P(), 1.0)

	// isenthalpic expansion
	assert.InDelta(t, pts.CondenserOut.H(), pts.EvaporatorIn.H(), 1.0)

	// superheat stacks up along the low pressure side
	assert.InDelta(t, cy.Te+cy.EvaporatorSuperheat, pts.EvaporatorOut.T(), 0.05)
	assert.InDelta(t, cy.Te+cy.EvaporatorSuperheat+cy.SuctionLineSuperheat, pts.Suction.T(), 0.05)

	// compression adds enthalpy and ends superheated above Tc
	assert.Greater(t, pts.Discharge.H(), pts.Suction.H())
	assert.Greater(t, pts.Discharge.T(), cy.Tc)

	// the expansion device feeds a two-phase mixture to the evaporator
	x := pts.EvaporatorIn.X()
	assert.Greater(t, x, 0.0)
	assert.Less(t, x, 1.0)
}

func TestCyclePointsEtaIsScaling(t *testing.T) {
	ideal := testCycle(t)
	ideal.EtaIs = 1.0
	real := testCycle(t)
	real.EtaIs = 0.6

	ptsIdeal, err := ideal.Points()
	require.NoError(t, err)
	ptsReal, err := real.Points()
	require.NoError(t, err)

	// a less efficient compressor discharges hotter gas
	assert.Greater(t, ptsReal.Discharge.H(), ptsIdeal.Discharge.H())
	assert.Greater(t, ptsReal.Discharge.T(), ptsIdeal.Discharge.T())
}

func TestCyclePointsValidation(t *testing.T) {
	cy := testCycle(t)
	cy.EtaIs = 0.0
	_, err := cy.Points()
	assert.Error(t, err)

	cy = testCycle(t)
	cy.Refrigerant = nil
	_, err = cy.Points()
	assert.Error(t, err)
}

func TestLogPhDiagramSave(t *testing.T) {
	cy := testCycle(t)
	d, err := NewLogPhDiagram(cy.Refrigerant)
	require.NoError(t, err)
	require.NoError(t, d.SetCycle(cy))

	path := filepath.Join(t.TempDir(), "log_ph.png")
	require.NoError(t, d.Save(10.0, 7.0, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestLogPhDiagramRejectsGlide(t *testing.T) {
	r454b, err := fluids.NewFluid("R454B", nil)
	require.NoError(t, err)
	_, err = NewLogPhDiagram(r454b)
	assert.ErrorIs(t, err, ErrGlideNotSupported)
}

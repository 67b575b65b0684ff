package vapor_compression

import (
	"errors"
	"fmt"
	"math"

	"hvac/fluids"
)

// convergence tolerance on the saturation temperatures, K
const machineTol = 0.01

// iteration budget of the outer Gauss-Seidel loop
const machineMaxIter = 50

// MachineSpec describes a single stage vapor compression machine: a
// compressor plus the air side of its evaporator and condenser. The coil
// effectivenesses and air mass flow rates are fixed for the life of the
// machine model, since changing a flow rate would also change the
// effectiveness of the coil.
type MachineSpec struct {
	Compressor Compressor

	EpsEva float64 // evaporator effectiveness, fraction in (0, 1]
	EpsCon float64 // condenser effectiveness, fraction in (0, 1]

	LTMassFlow float64 // air mass flow rate through the evaporator, kg/s
	HTMassFlow float64 // air mass flow rate through the condenser, kg/s

	// Optional inlet air states; when both are set the machine is simulated
	// on construction.
	LTAirIn *fluids.HumidAir
	HTAirIn *fluids.HumidAir
}

// SingleStageVCMachine finds the steady-state working point of a single
// stage vapor compression machine: the evaporation and condensation
// temperature settle where the capacity the compressor imposes matches the
// heat the coils can move at their air-side conditions.
type SingleStageVCMachine struct {
	compressor Compressor

	epsEva float64
	epsCon float64
	ltMa   float64
	htMa   float64

	ltAirIn fluids.HumidAir
	htAirIn fluids.HumidAir
	ltSet   bool
	htSet   bool

	te        float64
	tc        float64
	converged bool
}

/*
Create a single stage machine model.

    Args:
        spec: the machine description

    Returns:
        the machine; when both inlet air states are given the steady state
        has already been solved
*/
func NewSingleStageVCMachine(spec MachineSpec) (*SingleStageVCMachine, error) {
	if spec.Compressor == nil {
		return nil, errors.New("vapor_compression: compressor not set")
	}
	if spec.EpsEva <= 0 || spec.EpsEva > 1 || spec.EpsCon <= 0 || spec.EpsCon > 1 {
		return nil, fmt.Errorf("vapor_compression: effectiveness eps_eva=%f eps_con=%f outside (0, 1]",
			spec.EpsEva, spec.EpsCon)
	}
	if spec.LTMassFlow <= 0 || spec.HTMassFlow <= 0 {
		return nil, fmt.Errorf("vapor_compression: air mass flow rates lt=%f ht=%f kg/s must be positive",
			spec.LTMassFlow, spec.HTMassFlow)
	}

	m := &SingleStageVCMachine{
		compressor: spec.Compressor,
		epsEva:     spec.EpsEva,
		epsCon:     spec.EpsCon,
		ltMa:       spec.LTMassFlow,
		htMa:       spec.HTMassFlow,
	}
	if spec.LTAirIn != nil {
		m.SetLTAirIn(*spec.LTAirIn)
	}
	if spec.HTAirIn != nil {
		m.SetHTAirIn(*spec.HTAirIn)
	}
	if m.ltSet && m.htSet {
		if err := m.Simulate(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// SetLTAirIn sets the inlet air state at the evaporator.
func (m *SingleStageVCMachine) SetLTAirIn(air fluids.HumidAir) {
	m.ltAirIn = air
	m.ltSet = true
	m.converged = false
}

// SetHTAirIn sets the inlet air state at the condenser.
func (m *SingleStageVCMachine) SetHTAirIn(air fluids.HumidAir) {
	m.htAirIn = air
	m.htSet = true
	m.converged = false
}

// SetSpeed sets the compressor speed, 1/s. Only valid when the machine is
// driven by a variable speed compressor.
func (m *SingleStageVCMachine) SetSpeed(speed float64) error {
	vs, ok := m.compressor.(*VariableSpeedCompressor)
	if !ok {
		return errors.New("vapor_compression: compressor has fixed speed")
	}
	if err := vs.SetSpeed(speed); err != nil {
		return err
	}
	m.converged = false
	return nil
}

// evaporator heat flow the coil can move at evaporation temperature te, W
func (m *SingleStageVCMachine) evaCoil(te float64) float64 {
	return m.epsEva * m.ltMa * (m.ltAirIn.H() - fluids.SaturatedAirEnthalpy(te))
}

// condenser heat flow the coil can move at condensation temperature tc, W
func (m *SingleStageVCMachine) conCoil(tc float64) float64 {
	return m.epsCon * m.htMa * m.htAirIn.Cp() * (tc - m.htAirIn.Tdb())
}

// compressor capacities at (te, tc), W
func (m *SingleStageVCMachine) capacities(te, tc float64) (qc, qh float64, err error) {
	m.compressor.SetConditions(te, tc)
	perf, err := m.compressor.Performance()
	if err != nil {
		return 0, 0, err
	}
	return perf.QcDot, perf.QhDot, nil
}

/*
Solve the steady-state evaporation and condensation temperature.

The two balance equations

    eps_eva  ma_lt  (h_air_in - h_sat_air(Te)) = Qc_dot(Te, Tc)
    eps_con  ma_ht  cp_a  (Tc - T_air_in)      = Qh_dot(Te, Tc)

are solved by alternating bisection on one temperature with the other held
fixed, until neither moves more than 0.01 K. The evaporator balance is
strictly decreasing in Te, the condenser balance strictly increasing in
Tc, so each one-dimensional solve has a unique root inside its bracket.
*/
func (m *SingleStageVCMachine) Simulate() error {
	if !m.ltSet || !m.htSet {
		return errors.New("vapor_compression: inlet air states not set")
	}

	tMin, tMax, err := m.compressor.Refrigerant().Limits()
	if err != nil {
		return err
	}

	// Te can never reach the temperature where the saturated air enthalpy
	// equals the inlet air enthalpy (the coil potential vanishes there).
	teCeil := m.airSideTeCeiling()

	teLo := math.Max(tMin+0.5, teCeil-40.0)
	teHi := teCeil - 0.05
	tcLo := m.htAirIn.Tdb() + 0.05
	tcHi := math.Min(tMax-0.5, m.htAirIn.Tdb()+45.0)
	if teLo >= teHi || tcLo >= tcHi {
		return fmt.Errorf("%w: empty bracket Te [%f, %f] / Tc [%f, %f]",
			ErrNotBracketed, teLo, teHi, tcLo, tcHi)
	}

	te := 0.5 * (teLo + teHi)
	tc := tcLo + 10.0
	if tc > tcHi {
		tc = 0.5 * (tcLo + tcHi)
	}

	for iter := 0; iter < machineMaxIter; iter++ {
		tcNew, err := m.solveTc(te, tcLo, tcHi)
		if err != nil {
			return err
		}
		teNew, err := m.solveTe(tcNew, teLo, teHi)
		if err != nil {
			return err
		}

		done := math.Abs(teNew-te) < machineTol && math.Abs(tcNew-tc) < machineTol
		te, tc = teNew, tcNew
		if done {
			m.te, m.tc = te, tc
			m.compressor.SetConditions(te, tc)
			m.converged = true
			return nil
		}
	}
	return fmt.Errorf("%w: after %d iterations Te=%.3f Tc=%.3f degC",
		ErrNoConvergence, machineMaxIter, te, tc)
}

// Temperature where the saturated air enthalpy equals the evaporator inlet
// air enthalpy, degree C. Found by bisection; the saturated air enthalpy is
// strictly increasing.
func (m *SingleStageVCMachine) airSideTeCeiling() float64 {
	hIn := m.ltAirIn.H()
	low, high := -45.0, m.ltAirIn.Tdb()
	for i := 0; i < 60; i++ {
		mid := 0.5 * (low + high)
		if fluids.SaturatedAirEnthalpy(mid) < hIn {
			low = mid
		} else {
			high = mid
		}
	}
	return 0.5 * (low + high)
}

// solveTc finds the condensation temperature balancing the condenser at a
// fixed evaporation temperature.
func (m *SingleStageVCMachine) solveTc(te, lo, hi float64) (float64, error) {
	f := func(tc float64) (float64, error) {
		_, qh, err := m.capacities(te, tc)
		if err != nil {
			return 0, err
		}
		return m.conCoil(tc) - qh, nil
	}
	fLo, err := f(lo)
	if err != nil {
		return 0, err
	}
	fHi, err := f(hi)
	if err != nil {
		return 0, err
	}
	if fLo > 0 || fHi < 0 {
		return 0, fmt.Errorf("%w: condenser balance has no root in [%.1f, %.1f] degC",
			ErrNotBracketed, lo, hi)
	}
	for i := 0; i < 60 && hi-lo > machineTol/4; i++ {
		mid := 0.5 * (lo + hi)
		fMid, err := f(mid)
		if err != nil {
			return 0, err
		}
		if fMid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

// solveTe finds the evaporation temperature balancing the evaporator at a
// fixed condensation temperature.
func (m *SingleStageVCMachine) solveTe(tc, lo, hi float64) (float64, error) {
	g := func(te float64) (float64, error) {
		qc, _, err := m.capacities(te, tc)
		if err != nil {
			return 0, err
		}
		return m.evaCoil(te) - qc, nil
	}
	gLo, err := g(lo)
	if err != nil {
		return 0, err
	}
	gHi, err := g(hi)
	if err != nil {
		return 0, err
	}
	if gLo < 0 || gHi > 0 {
		return 0, fmt.Errorf("%w: evaporator balance has no root in [%.1f, %.1f] degC",
			ErrNotBracketed, lo, hi)
	}
	for i := 0; i < 60 && hi-lo > machineTol/4; i++ {
		mid := 0.5 * (lo + hi)
		gMid, err := g(mid)
		if err != nil {
			return 0, err
		}
		if gMid > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

func (m *SingleStageVCMachine) requireConverged() error {
	if !m.converged {
		return errors.New("vapor_compression: machine not simulated; call Simulate first")
	}
	return nil
}

// Te is the steady-state evaporation temperature, degree C.
func (m *SingleStageVCMachine) Te() (float64, error) {
	if err := m.requireConverged(); err != nil {
		return 0, err
	}
	return m.te, nil
}

// Tc is the steady-state condensation temperature, degree C.
func (m *SingleStageVCMachine) Tc() (float64, error) {
	if err := m.requireConverged(); err != nil {
		return 0, err
	}
	return m.tc, nil
}

// Performance reports the machine performance at the solved steady state.
func (m *SingleStageVCMachine) Performance() (*Performance, error) {
	if err := m.requireConverged(); err != nil {
		return nil, err
	}
	m.compressor.SetConditions(m.te, m.tc)
	return m.compressor.Performance()
}

// Cycle reports the refrigerant corner states at the solved steady state.
func (m *SingleStageVCMachine) Cycle() (*CycleStates, error) {
	if err := m.requireConverged(); err != nil {
		return nil, err
	}
	m.compressor.SetConditions(m.te, m.tc)
	return m.compressor.Cycle()
}

// Compressor reports the compressor the machine is driven by.
func (m *SingleStageVCMachine) Compressor() Compressor { return m.compressor }

// LTAirIn reports the inlet air state at the evaporator.
func (m *SingleStageVCMachine) LTAirIn() fluids.HumidAir { return m.ltAirIn }

// HTAirIn reports the inlet air state at the condenser.
func (m *SingleStageVCMachine) HTAirIn() fluids.HumidAir { return m.htAirIn }

/*
Air state leaving the evaporator. The outlet lies on the straight line
between the inlet state and saturated air at the evaporation temperature
(the bypass model of a wet coil), at the enthalpy fixed by the energy
balance; on a dry coil the humidity ratio is simply carried through.
*/
func (m *SingleStageVCMachine) LTAirOut() (fluids.HumidAir, error) {
	perf, err := m.Performance()
	if err != nil {
		return fluids.HumidAir{}, err
	}
	hIn := m.ltAirIn.H()
	hOut := hIn - perf.QcDot/m.ltMa

	wIn := m.ltAirIn.W()
	wSat := fluids.SaturatedAirW(m.te)
	wOut := wIn
	if wSat < wIn {
		frac := (hIn - hOut) / (hIn - fluids.SaturatedAirEnthalpy(m.te))
		wOut = wIn - frac*(wIn-wSat)
	}
	return fluids.NewHumidAirFromH(hOut, wOut)
}

// Air state leaving the condenser: sensibly heated, humidity ratio
// unchanged.
func (m *SingleStageVCMachine) HTAirOut() (fluids.HumidAir, error) {
	perf, err := m.Performance()
	if err != nil {
		return fluids.HumidAir{}, err
	}
	tOut := m.htAirIn.Tdb() + perf.QhDot/(m.htMa*m.htAirIn.Cp())
	return fluids.NewHumidAirFromW(tOut, m.htAirIn.W())
}

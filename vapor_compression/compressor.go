package vapor_compression

import (
	"errors"
	"fmt"
	"math"

	"hvac/fluids"
)

// CycleStates are the refrigerant states at the four corner points of the
// standard (loss-free) vapor compression cycle.
type CycleStates struct {
	SuctionGas   fluids.FluidState // evaporator outlet = compressor inlet
	DischargeGas fluids.FluidState // compressor outlet = condenser inlet
	Liquid       fluids.FluidState // condenser outlet = expansion device inlet
	Mixture      fluids.FluidState // expansion device outlet = evaporator inlet
}

// Performance bundles the compressor performance parameters at one set of
// working conditions, in SI units.
type Performance struct {
	QcDot   float64 // cooling capacity, W
	WcDot   float64 // mechanical compressor power, W
	QhDot   float64 // heating capacity (heat rejection rate), W
	MDot    float64 // refrigerant mass flow rate, kg/s
	COP     float64 // cooling coefficient of performance, -
	EtaIs   float64 // isentropic efficiency, -
	Current float64 // drawn current, A (0 when not tabulated)
	TDis    float64 // discharge temperature, degree C
}

// Compressor is what the single stage machine model needs from a compressor:
// set the saturation temperatures, read the performance and the cycle.
type Compressor interface {
	SetConditions(te, tc float64)
	Te() float64
	Tc() float64
	Performance() (*Performance, error)
	Cycle() (*CycleStates, error)
	Refrigerant() *fluids.Fluid
	Superheat() float64
	Subcooling() float64
}

// CompressorSpec describes a compressor to be built from a manufacturer
// coefficient table.
type CompressorSpec struct {
	// CoeffFile is the path of the coefficient CSV file. Ignored when Table
	// is set.
	CoeffFile string
	// Table is an already loaded coefficient table.
	Table *CoefficientTable

	Superheat   float64       // suction superheat the coefficients are valid for, K
	Subcooling  float64       // subcooling the coefficients are valid for, K
	Refrigerant *fluids.Fluid // refrigerant the compressor runs on

	// Units overrides the manufacturer unit registry; nil selects
	// DefaultUnits.
	Units Units

	// Speed range of the drive, 1/s. Variable speed compressors only.
	MinSpeed float64
	MaxSpeed float64
}

func (spec *CompressorSpec) table() (*CoefficientTable, error) {
	if spec.Table != nil {
		return spec.Table, nil
	}
	return LoadCoefficientTable(spec.CoeffFile)
}

func (spec *CompressorSpec) units() Units {
	if spec.Units == nil {
		return DefaultUnits()
	}
	u := DefaultUnits()
	for q, s := range spec.Units {
		u[q] = s
	}
	return u
}

// FixedSpeedCompressor models a fixed speed compressor through the
// 10-coefficient manufacturer polynomials.
type FixedSpeedCompressor struct {
	tb          *CoefficientTable
	units       Units
	dtSh        float64 // suction superheat, K
	dtSc        float64 // subcooling, K
	refrigerant *fluids.Fluid

	te float64 // evaporation temperature, degree C
	tc float64 // condensation temperature, degree C

	polySpeed float64 // speed fed to the polynomial, manufacturer unit
}

/*
Create a fixed speed compressor.

    Args:
        spec: the compressor description; MinSpeed/MaxSpeed are ignored

    Returns:
        the compressor with working conditions still unset
*/
func NewFixedSpeedCompressor(spec CompressorSpec) (*FixedSpeedCompressor, error) {
	tb, err := spec.table()
	if err != nil {
		return nil, err
	}
	if tb.VariableSpeed() {
		return nil, fmt.Errorf("%w: %d coefficients need a variable speed compressor",
			ErrBadCoefficientCount, tb.CoefficientCount())
	}
	if spec.Refrigerant == nil {
		return nil, errors.New("vapor_compression: refrigerant not set")
	}
	if spec.Superheat < 0 || spec.Subcooling < 0 {
		return nil, errors.New("vapor_compression: superheat and subcooling must not be negative")
	}
	return &FixedSpeedCompressor{
		tb:          tb,
		units:       spec.units(),
		dtSh:        spec.Superheat,
		dtSc:        spec.Subcooling,
		refrigerant: spec.Refrigerant,
	}, nil
}

// SetConditions sets the working conditions, degree C.
func (c *FixedSpeedCompressor) SetConditions(te, tc float64) {
	c.te, c.tc = te, tc
}

// Te is the evaporation temperature, degree C.
func (c *FixedSpeedCompressor) Te() float64 { return c.te }

// Tc is the condensation temperature, degree C.
func (c *FixedSpeedCompressor) Tc() float64 { return c.tc }

// Refrigerant reports the refrigerant the compressor runs on.
func (c *FixedSpeedCompressor) Refrigerant() *fluids.Fluid { return c.refrigerant }

// Superheat is the suction superheat the coefficients are valid for, K.
func (c *FixedSpeedCompressor) Superheat() float64 { return c.dtSh }

// Subcooling is the subcooling the coefficients are valid for, K.
func (c *FixedSpeedCompressor) Subcooling() float64 { return c.dtSc }

// evalSI evaluates a quantity polynomial and converts it to SI.
func (c *FixedSpeedCompressor) evalSI(q Quantity) (float64, error) {
	v, err := c.tb.Eval(q, c.te, c.tc, c.polySpeed)
	if err != nil {
		return 0, err
	}
	return toSI(v, c.units[q])
}

/*
Calculate the four corner states of the standard cycle at the current
working conditions. The expansion is isenthalpic, so the evaporator inlet
enthalpy equals the condenser outlet enthalpy.
*/
func (c *FixedSpeedCompressor) Cycle() (*CycleStates, error) {
	r := c.refrigerant

	satEva, err := r.State(fluids.T(c.te), fluids.X(1.0))
	if err != nil {
		return nil, fmt.Errorf("evaporator saturation: %w", err)
	}
	pe := satEva.P()

	suction := satEva
	if c.dtSh > 0 {
		suction, err = r.State(fluids.T(c.te+c.dtSh), fluids.P(pe))
		if err != nil {
			return nil, fmt.Errorf("suction gas: %w", err)
		}
	}

	satCon, err := r.State(fluids.T(c.tc), fluids.X(0.0))
	if err != nil {
		return nil, fmt.Errorf("condenser saturation: %w", err)
	}
	pc := satCon.P()

	liquid := satCon
	if c.dtSc > 0 {
		liquid, err = r.State(fluids.T(c.tc-c.dtSc), fluids.P(pc))
		if err != nil {
			return nil, fmt.Errorf("condenser outlet: %w", err)
		}
	}

	perfWc, err := c.evalSI(QuantityCompressorPower)
	if err != nil {
		return nil, err
	}
	mDot, err := c.evalSI(QuantityMassFlowRate)
	if err != nil {
		return nil, err
	}
	if mDot <= 0 {
		return nil, fmt.Errorf("mass flow rate %f kg/s at Te=%.1f Tc=%.1f degC not positive", mDot, c.te, c.tc)
	}

	// adiabatic compressor: all shaft work ends up in the refrigerant
	h2 := suction.H() + perfWc/mDot
	discharge, err := r.State(fluids.P(pc), fluids.H(h2))
	if err != nil {
		return nil, fmt.Errorf("discharge gas: %w", err)
	}

	mixture, err := r.State(fluids.P(pe), fluids.H(liquid.H()))
	if err != nil {
		return nil, fmt.Errorf("evaporator inlet: %w", err)
	}

	return &CycleStates{
		SuctionGas:   suction,
		DischargeGas: discharge,
		Liquid:       liquid,
		Mixture:      mixture,
	}, nil
}

// Performance calculates the performance parameters at the current working
// conditions.
func (c *FixedSpeedCompressor) Performance() (*Performance, error) {
	qc, err := c.evalSI(QuantityCoolingCapacity)
	if err != nil {
		return nil, err
	}
	wc, err := c.evalSI(QuantityCompressorPower)
	if err != nil {
		return nil, err
	}
	mDot, err := c.evalSI(QuantityMassFlowRate)
	if err != nil {
		return nil, err
	}
	if wc <= 0 {
		return nil, fmt.Errorf("compressor power %f W at Te=%.1f Tc=%.1f degC not positive", wc, c.te, c.tc)
	}

	perf := &Performance{
		QcDot: qc,
		WcDot: wc,
		QhDot: qc + wc,
		MDot:  mDot,
		COP:   qc / wc,
		TDis:  math.NaN(),
	}

	cycle, err := c.Cycle()
	if err != nil {
		return nil, err
	}
	hIs, err := c.refrigerant.State(fluids.P(cycle.DischargeGas.P()), fluids.S(cycle.SuctionGas.S()))
	if err != nil {
		return nil, fmt.Errorf("isentropic discharge: %w", err)
	}
	perf.EtaIs = mDot * (hIs.H() - cycle.SuctionGas.H()) / wc
	perf.TDis = cycle.DischargeGas.T()

	if c.tb.Has(QuantityCurrent) {
		if perf.Current, err = c.evalSI(QuantityCurrent); err != nil {
			return nil, err
		}
	}
	if c.tb.Has(QuantityDischargeTemp) {
		if perf.TDis, err = c.evalSI(QuantityDischargeTemp); err != nil {
			return nil, err
		}
	}
	return perf, nil
}

// VariableSpeedCompressor models a compressor with a variable speed drive
// through the 20- or 30-coefficient manufacturer polynomials.
type VariableSpeedCompressor struct {
	FixedSpeedCompressor
	minSpeed float64 // 1/s
	maxSpeed float64 // 1/s
	speed    float64 // 1/s
}

/*
Create a variable speed compressor.

    Args:
        spec: the compressor description; MinSpeed and MaxSpeed bound the
            drive, 1/s

    Returns:
        the compressor, running at minimum speed until SetSpeed is called
*/
func NewVariableSpeedCompressor(spec CompressorSpec) (*VariableSpeedCompressor, error) {
	tb, err := spec.table()
	if err != nil {
		return nil, err
	}
	if !tb.VariableSpeed() {
		return nil, fmt.Errorf("%w: %d coefficients need a fixed speed compressor",
			ErrBadCoefficientCount, tb.CoefficientCount())
	}
	if spec.Refrigerant == nil {
		return nil, errors.New("vapor_compression: refrigerant not set")
	}
	if spec.MinSpeed <= 0 || spec.MaxSpeed <= spec.MinSpeed {
		return nil, fmt.Errorf("vapor_compression: bad speed range [%f, %f] 1/s", spec.MinSpeed, spec.MaxSpeed)
	}
	c := &VariableSpeedCompressor{
		FixedSpeedCompressor: FixedSpeedCompressor{
			tb:          tb,
			units:       spec.units(),
			dtSh:        spec.Superheat,
			dtSc:        spec.Subcooling,
			refrigerant: spec.Refrigerant,
		},
		minSpeed: spec.MinSpeed,
		maxSpeed: spec.MaxSpeed,
	}
	if err := c.SetSpeed(spec.MinSpeed); err != nil {
		return nil, err
	}
	return c, nil
}

/*
Set the compressor speed.

    Args:
        speed: compressor speed, 1/s; must lie inside the drive range
*/
func (c *VariableSpeedCompressor) SetSpeed(speed float64) error {
	if speed < c.minSpeed || speed > c.maxSpeed {
		return fmt.Errorf("%w: speed %f 1/s outside [%f, %f]",
			ErrOutOfSpeedRange, speed, c.minSpeed, c.maxSpeed)
	}
	polySpeed, err := fromSI(speed, c.units[quantitySpeed])
	if err != nil {
		return err
	}
	c.speed = speed
	c.polySpeed = polySpeed
	return nil
}

// Speed is the current compressor speed, 1/s.
func (c *VariableSpeedCompressor) Speed() float64 { return c.speed }

// SpeedRange reports the drive limits, 1/s.
func (c *VariableSpeedCompressor) SpeedRange() (min, max float64) {
	return c.minSpeed, c.maxSpeed
}

/*
Find the compressor speed that realizes a cooling capacity at the current
evaporation and condensation temperature, by bisection over the drive
range. The capacity is monotonically increasing with speed for sane
coefficient sets.

    Args:
        qcDot: target cooling capacity, W

    Returns:
        compressor speed, 1/s
*/
func (c *VariableSpeedCompressor) SpeedForCoolingCapacity(qcDot float64) (float64, error) {
	save := c.speed
	defer func() { _ = c.SetSpeed(save) }()

	qcAt := func(speed float64) (float64, error) {
		if err := c.SetSpeed(speed); err != nil {
			return 0, err
		}
		return c.evalSI(QuantityCoolingCapacity)
	}

	qcMin, err := qcAt(c.minSpeed)
	if err != nil {
		return 0, err
	}
	qcMax, err := qcAt(c.maxSpeed)
	if err != nil {
		return 0, err
	}
	if qcDot < qcMin || qcDot > qcMax {
		return 0, fmt.Errorf("%w: %.0f W outside [%.0f, %.0f] W at Te=%.1f Tc=%.1f degC",
			ErrNotBracketed, qcDot, qcMin, qcMax, c.te, c.tc)
	}

	lo, hi := c.minSpeed, c.maxSpeed
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		qc, err := qcAt(mid)
		if err != nil {
			return 0, err
		}
		if qc < qcDot {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

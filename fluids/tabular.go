package fluids

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/interp"
)

// SatTable is tabulated saturation data of one refrigerant, one row per
// saturation temperature. Entropies are not part of the table; they are
// derived on registration from the enthalpies and liquid specific heats so
// that the Clausius relation s_g - s_f = (h_g - h_f) / T holds on every row.
type SatTable struct {
	Name  string
	Glide bool // zeotropic blend with temperature glide

	T    []float64 // saturation temperature, degree C, strictly increasing
	P    []float64 // saturation pressure, Pa, strictly increasing
	RhoF []float64 // saturated liquid density, kg/m3
	RhoG []float64 // saturated vapor density, kg/m3
	HF   []float64 // saturated liquid enthalpy, J/kg
	HG   []float64 // saturated vapor enthalpy, J/kg
	CpF  []float64 // saturated liquid specific heat, J/kg K
	CpG  []float64 // saturated vapor specific heat, J/kg K
}

func (tb *SatTable) validate() error {
	n := len(tb.T)
	if n < 3 {
		return fmt.Errorf("table %s: need at least 3 rows, got %d", tb.Name, n)
	}
	for _, col := range [][]float64{tb.P, tb.RhoF, tb.RhoG, tb.HF, tb.HG, tb.CpF, tb.CpG} {
		if len(col) != n {
			return fmt.Errorf("table %s: column length mismatch", tb.Name)
		}
	}
	for i := 1; i < n; i++ {
		if tb.T[i] <= tb.T[i-1] {
			return fmt.Errorf("table %s: temperatures not strictly increasing at row %d", tb.Name, i)
		}
		if tb.P[i] <= tb.P[i-1] {
			return fmt.Errorf("table %s: pressures not strictly increasing at row %d", tb.Name, i)
		}
		// statePH tells the liquid from the two-phase region by the h_f
		// curve, so it must be invertible
		if tb.HF[i] <= tb.HF[i-1] {
			return fmt.Errorf("table %s: liquid enthalpies not strictly increasing at row %d", tb.Name, i)
		}
	}
	for i := 0; i < n; i++ {
		if tb.HG[i] <= tb.HF[i] {
			return fmt.Errorf("table %s: h_g <= h_f at row %d", tb.Name, i)
		}
		if tb.RhoF[i] <= tb.RhoG[i] {
			return fmt.Errorf("table %s: rho_f <= rho_g at row %d", tb.Name, i)
		}
	}
	return nil
}

// satCurve is a SatTable with fitted monotone cubic interpolants over the
// saturation temperature, plus the inverse fit over pressure.
type satCurve struct {
	table *SatTable

	sf []float64 // derived saturated liquid entropy, J/kg K
	sg []float64 // derived saturated vapor entropy, J/kg K

	pOfT  interp.FritschButland
	tOfP  interp.FritschButland
	rhoF  interp.FritschButland
	rhoG  interp.FritschButland
	hF    interp.FritschButland
	hG    interp.FritschButland
	sF    interp.FritschButland
	sG    interp.FritschButland
	cpF   interp.FritschButland
	cpG   interp.FritschButland
}

/*
Build the fitted saturation curve from a table.

The liquid entropy is integrated along the saturation line with
ds = cp/T dT, anchored at 1000 J/kg K on the row closest to 0 degree C
(the common 200 kJ/kg / 1 kJ/kg K reference for the saturated liquid at
0 degree C); the vapor entropy follows from the Clausius relation.
*/
func newSatCurve(tb *SatTable) (*satCurve, error) {
	if err := tb.validate(); err != nil {
		return nil, err
	}
	n := len(tb.T)

	anchor := 0
	for i := 1; i < n; i++ {
		if math.Abs(tb.T[i]) < math.Abs(tb.T[anchor]) {
			anchor = i
		}
	}

	sf := make([]float64, n)
	sf[anchor] = 1000.0
	for i := anchor + 1; i < n; i++ {
		t0, t1 := tb.T[i-1]+t_zero, tb.T[i]+t_zero
		cp := 0.5 * (tb.CpF[i-1] + tb.CpF[i])
		sf[i] = sf[i-1] + cp*math.Log(t1/t0)
	}
	for i := anchor - 1; i >= 0; i-- {
		t0, t1 := tb.T[i]+t_zero, tb.T[i+1]+t_zero
		cp := 0.5 * (tb.CpF[i] + tb.CpF[i+1])
		sf[i] = sf[i+1] - cp*math.Log(t1/t0)
	}

	sg := make([]float64, n)
	for i := 0; i < n; i++ {
		sg[i] = sf[i] + (tb.HG[i]-tb.HF[i])/(tb.T[i]+t_zero)
	}

	c := &satCurve{table: tb, sf: sf, sg: sg}
	for _, f := range []struct {
		fit *interp.FritschButland
		xs  []float64
		ys  []float64
	}{
		{&c.pOfT, tb.T, tb.P},
		{&c.tOfP, tb.P, tb.T},
		{&c.rhoF, tb.T, tb.RhoF},
		{&c.rhoG, tb.T, tb.RhoG},
		{&c.hF, tb.T, tb.HF},
		{&c.hG, tb.T, tb.HG},
		{&c.sF, tb.T, sf},
		{&c.sG, tb.T, sg},
		{&c.cpF, tb.T, tb.CpF},
		{&c.cpG, tb.T, tb.CpG},
	} {
		if err := f.fit.Fit(f.xs, f.ys); err != nil {
			return nil, fmt.Errorf("table %s: %w", tb.Name, err)
		}
	}
	return c, nil
}

func (c *satCurve) tMin() float64 { return c.table.T[0] }
func (c *satCurve) tMax() float64 { return c.table.T[len(c.table.T)-1] }
func (c *satCurve) pMin() float64 { return c.table.P[0] }
func (c *satCurve) pMax() float64 { return c.table.P[len(c.table.P)-1] }

func (c *satCurve) checkT(t float64) error {
	if t < c.tMin() || t > c.tMax() {
		return fmt.Errorf("%w: saturation temperature %.2f degC outside [%.2f, %.2f]",
			ErrOutOfRange, t, c.tMin(), c.tMax())
	}
	return nil
}

func (c *satCurve) checkP(p float64) error {
	if p < c.pMin() || p > c.pMax() {
		return fmt.Errorf("%w: saturation pressure %.0f Pa outside [%.0f, %.0f]",
			ErrOutOfRange, p, c.pMin(), c.pMax())
	}
	return nil
}

// TabularBackend is a PropertyBackend backed by saturation tables. States
// off the saturation dome are extended with the tabulated specific heats:
// superheated vapor along an ideal-gas-like isobar, subcooled liquid as an
// incompressible liquid at the saturation properties of its temperature.
type TabularBackend struct {
	mu     sync.RWMutex
	curves map[string]*satCurve
}

// NewTabularBackend creates an empty backend. Tables are added with Register.
func NewTabularBackend() *TabularBackend {
	return &TabularBackend{curves: make(map[string]*satCurve)}
}

// Register adds a saturation table to the backend, replacing any table
// registered earlier under the same name.
func (b *TabularBackend) Register(tb *SatTable) error {
	c, err := newSatCurve(tb)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.curves[normName(tb.Name)] = c
	b.mu.Unlock()
	return nil
}

// Fluids lists the registered fluid names, sorted.
func (b *TabularBackend) Fluids() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.curves))
	for name := range b.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *TabularBackend) curve(fluid string) (*satCurve, error) {
	b.mu.RLock()
	c, ok := b.curves[normName(fluid)]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFluid, fluid)
	}
	return c, nil
}

// Limits implements PropertyBackend.
func (b *TabularBackend) Limits(fluid string) (float64, float64, error) {
	c, err := b.curve(fluid)
	if err != nil {
		return 0, 0, err
	}
	return c.tMin(), c.tMax(), nil
}

// Glide implements PropertyBackend.
func (b *TabularBackend) Glide(fluid string) (bool, error) {
	c, err := b.curve(fluid)
	if err != nil {
		return false, err
	}
	return c.table.Glide, nil
}

// State implements PropertyBackend.
func (b *TabularBackend) State(fluid string, in1, in2 Input) (FluidState, error) {
	c, err := b.curve(fluid)
	if err != nil {
		return FluidState{}, err
	}
	if in1.Prop == in2.Prop {
		return FluidState{}, fmt.Errorf("%w: %s given twice", ErrUnsupportedInputPair, in1.Prop)
	}

	// Order-insensitive dispatch.
	get := func(p Property) (float64, bool) {
		if in1.Prop == p {
			return in1.Value, true
		}
		if in2.Prop == p {
			return in2.Value, true
		}
		return 0, false
	}

	t, hasT := get(PropT)
	p, hasP := get(PropP)
	x, hasX := get(PropX)
	h, hasH := get(PropH)
	s, hasS := get(PropS)

	switch {
	case hasT && hasX:
		return c.stateTX(fluid, t, x)
	case hasP && hasX:
		if err := c.checkP(p); err != nil {
			return FluidState{}, err
		}
		return c.stateTX(fluid, c.tOfP.Predict(p), x)
	case hasT && hasP:
		return c.stateTP(fluid, t, p)
	case hasP && hasH:
		return c.statePH(fluid, p, h)
	case hasP && hasS:
		return c.statePS(fluid, p, s)
	case hasT && hasH:
		return c.stateTH(fluid, t, h)
	default:
		return FluidState{}, fmt.Errorf("%w: (%s, %s)", ErrUnsupportedInputPair, in1.Prop, in2.Prop)
	}
}

/*
Saturated or two-phase state from saturation temperature and quality.

    Args:
        t: saturation temperature, degree C
        x: vapor quality, kg/kg in [0, 1]
*/
func (c *satCurve) stateTX(fluid string, t, x float64) (FluidState, error) {
	if err := c.checkT(t); err != nil {
		return FluidState{}, err
	}
	if x < 0.0 || x > 1.0 {
		return FluidState{}, fmt.Errorf("%w: quality %.3f outside [0, 1]", ErrOutOfRange, x)
	}
	hf, hg := c.hF.Predict(t), c.hG.Predict(t)
	sf, sg := c.sF.Predict(t), c.sG.Predict(t)
	vf, vg := 1.0/c.rhoF.Predict(t), 1.0/c.rhoG.Predict(t)
	v := vf + x*(vg-vf)
	return FluidState{
		fluid: fluid,
		t:     t,
		p:     c.pOfT.Predict(t),
		rho:   1.0 / v,
		h:     hf + x*(hg-hf),
		s:     sf + x*(sg-sf),
		x:     x,
	}, nil
}

// Single-phase state from temperature and pressure. The side of the dome is
// decided by comparing the pressure with the saturation pressure at t.
func (c *satCurve) stateTP(fluid string, t, p float64) (FluidState, error) {
	if err := c.checkP(p); err != nil {
		return FluidState{}, err
	}
	tSat := c.tOfP.Predict(p)
	if t < tSat {
		// compressed liquid; incompressible approximation along the
		// saturated liquid line at t
		if err := c.checkT(t); err != nil {
			return FluidState{}, err
		}
		return FluidState{
			fluid: fluid,
			t:     t,
			p:     p,
			rho:   c.rhoF.Predict(t),
			h:     c.hF.Predict(t),
			s:     c.sF.Predict(t),
			x:     math.NaN(),
		}, nil
	}
	return c.superheated(fluid, p, tSat, t), nil
}

// Superheated vapor at pressure p, saturation temperature tSat, vapor
// temperature t >= tSat.
func (c *satCurve) superheated(fluid string, p, tSat, t float64) FluidState {
	cp := c.cpG.Predict(tSat)
	tK, tSatK := t+t_zero, tSat+t_zero
	return FluidState{
		fluid: fluid,
		t:     t,
		p:     p,
		rho:   c.rhoG.Predict(tSat) * tSatK / tK,
		h:     c.hG.Predict(tSat) + cp*(t-tSat),
		s:     c.sG.Predict(tSat) + cp*math.Log(tK/tSatK),
		x:     math.NaN(),
	}
}

func (c *satCurve) statePH(fluid string, p, h float64) (FluidState, error) {
	if err := c.checkP(p); err != nil {
		return FluidState{}, err
	}
	tSat := c.tOfP.Predict(p)
	hf, hg := c.hF.Predict(tSat), c.hG.Predict(tSat)
	switch {
	case h < hf:
		t := tSat - (hf-h)/c.cpF.Predict(tSat)
		if err := c.checkT(t); err != nil {
			return FluidState{}, err
		}
		return FluidState{
			fluid: fluid,
			t:     t,
			p:     p,
			rho:   c.rhoF.Predict(t),
			h:     h,
			s:     c.sF.Predict(t),
			x:     math.NaN(),
		}, nil
	case h <= hg:
		st, err := c.stateTX(fluid, tSat, (h-hf)/(hg-hf))
		if err != nil {
			return FluidState{}, err
		}
		st.p, st.h = p, h
		return st, nil
	default:
		cp := c.cpG.Predict(tSat)
		return c.superheated(fluid, p, tSat, tSat+(h-hg)/cp), nil
	}
}

func (c *satCurve) statePS(fluid string, p, s float64) (FluidState, error) {
	if err := c.checkP(p); err != nil {
		return FluidState{}, err
	}
	tSat := c.tOfP.Predict(p)
	sf, sg := c.sF.Predict(tSat), c.sG.Predict(tSat)
	switch {
	case s < sf:
		// subcooled liquid; walk back along the liquid line
		cp := c.cpF.Predict(tSat)
		t := (tSat+t_zero)*math.Exp((s-sf)/cp) - t_zero
		if err := c.checkT(t); err != nil {
			return FluidState{}, err
		}
		return FluidState{
			fluid: fluid,
			t:     t,
			p:     p,
			rho:   c.rhoF.Predict(t),
			h:     c.hF.Predict(t),
			s:     s,
			x:     math.NaN(),
		}, nil
	case s <= sg:
		st, err := c.stateTX(fluid, tSat, (s-sf)/(sg-sf))
		if err != nil {
			return FluidState{}, err
		}
		st.p, st.s = p, s
		return st, nil
	default:
		cp := c.cpG.Predict(tSat)
		t := (tSat+t_zero)*math.Exp((s-sg)/cp) - t_zero
		return c.superheated(fluid, p, tSat, t), nil
	}
}

// Two-phase state from temperature and enthalpy, the pair used to find the
// quality at the evaporator inlet after an isenthalpic expansion.
func (c *satCurve) stateTH(fluid string, t, h float64) (FluidState, error) {
	if err := c.checkT(t); err != nil {
		return FluidState{}, err
	}
	hf, hg := c.hF.Predict(t), c.hG.Predict(t)
	if h < hf || h > hg {
		return FluidState{}, fmt.Errorf(
			"%w: enthalpy %.0f J/kg outside the dome [%.0f, %.0f] at %.2f degC",
			ErrOutOfRange, h, hf, hg, t)
	}
	return c.stateTX(fluid, t, (h-hf)/(hg-hf))
}

var (
	defaultBackendOnce sync.Once
	defaultBackend     *TabularBackend
)

// DefaultBackend returns the shared backend preloaded with the built-in
// refrigerant tables.
func DefaultBackend() *TabularBackend {
	defaultBackendOnce.Do(func() {
		defaultBackend = NewTabularBackend()
		for _, tb := range builtinTables {
			if err := defaultBackend.Register(tb); err != nil {
				panic(err)
			}
		}
	})
	return defaultBackend
}

func normName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}

package fluids

import (
	"fmt"
	"math"
	"strings"
)

// Fluid is a named refrigerant bound to a property backend.
type Fluid struct {
	name    string
	backend PropertyBackend
}

/*
Create a refrigerant from its name. The name must be known by the backend;
when no backend is given, the built-in tabular backend is used.

    Args:
        name: refrigerant name, e.g. "R22", "R134a"
        backend: optional property backend (nil selects the built-in one)

    Returns:
        Fluid bound to the backend
*/
func NewFluid(name string, backend PropertyBackend) (*Fluid, error) {
	if backend == nil {
		backend = DefaultBackend()
	}
	if _, _, err := backend.Limits(name); err != nil {
		return nil, fmt.Errorf("fluid %s: %w", name, err)
	}
	return &Fluid{name: name, backend: backend}, nil
}

/*
Create a refrigerant blend from a constituent specification of the form
"R32&R1234yf" with the mass fraction of each constituent. Only blends the
backend carries data for can be resolved.

    Args:
        spec: constituent names separated by '&'
        massFractions: mass fraction of each constituent, kg/kg
        backend: optional property backend (nil selects the built-in one)

    Returns:
        Fluid bound to the backend
*/
func NewMixture(spec string, massFractions []float64, backend PropertyBackend) (*Fluid, error) {
	if backend == nil {
		backend = DefaultBackend()
	}
	parts := strings.Split(spec, "&")
	if len(parts) != len(massFractions) {
		return nil, fmt.Errorf("mixture %s: %d constituents but %d mass fractions", spec, len(parts), len(massFractions))
	}
	var sum float64
	for _, y := range massFractions {
		sum += y
	}
	if math.Abs(sum-1.0) > 1e-3 {
		return nil, fmt.Errorf("mixture %s: mass fractions sum to %f, want 1", spec, sum)
	}
	name, ok := resolveBlend(parts, massFractions)
	if !ok {
		return nil, fmt.Errorf("mixture %s: %w", spec, ErrUnknownMixture)
	}
	return NewFluid(name, backend)
}

// Name reports the refrigerant name.
func (f *Fluid) Name() string { return f.name }

// Backend reports the property backend the fluid is bound to.
func (f *Fluid) Backend() PropertyBackend { return f.backend }

/*
Fix a thermodynamic state of the fluid from two independent properties.

    Args:
        in1: first known property
        in2: second known property

    Returns:
        the fixed state
*/
func (f *Fluid) State(in1, in2 Input) (FluidState, error) {
	return f.backend.State(f.name, in1, in2)
}

// Limits reports the saturation temperature range of the backend data, degree C.
func (f *Fluid) Limits() (tMin, tMax float64, err error) {
	return f.backend.Limits(f.name)
}

// Glide reports whether the fluid is a zeotropic blend with temperature glide.
func (f *Fluid) Glide() bool {
	g, err := f.backend.Glide(f.name)
	if err != nil {
		return false
	}
	return g
}

// knownBlends maps sorted constituent sets to the pseudo-pure table that
// represents the blend. Mass fractions must match within a small tolerance.
var knownBlends = []struct {
	parts     []string
	fractions []float64
	name      string
}{
	{[]string{"R32", "R1234yf"}, []float64{0.689, 0.311}, "R454B"},
	{[]string{"R32", "R125"}, []float64{0.50, 0.50}, "R410A"},
}

func resolveBlend(parts []string, fractions []float64) (string, bool) {
	for _, b := range knownBlends {
		if len(b.parts) != len(parts) {
			continue
		}
		match := true
		for i := range parts {
			if !strings.EqualFold(parts[i], b.parts[i]) || math.Abs(fractions[i]-b.fractions[i]) > 0.005 {
				match = false
				break
			}
		}
		if match {
			return b.name, true
		}
	}
	return "", false
}

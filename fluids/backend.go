package fluids

import (
	"errors"
	"fmt"
)

// Property identifies a thermodynamic state property.
type Property string

const (
	PropT   Property = "T"   // temperature, degree C
	PropP   Property = "P"   // pressure, Pa
	PropRho Property = "rho" // mass density, kg/m3
	PropH   Property = "h"   // specific enthalpy, J/kg
	PropS   Property = "s"   // specific entropy, J/kg K
	PropX   Property = "x"   // vapor quality, kg/kg
)

// Input is one known state property handed to a property backend.
type Input struct {
	Prop  Property
	Value float64
}

// T is a temperature input, degree C.
func T(v float64) Input { return Input{Prop: PropT, Value: v} }

// P is a pressure input, Pa.
func P(v float64) Input { return Input{Prop: PropP, Value: v} }

// H is a specific enthalpy input, J/kg.
func H(v float64) Input { return Input{Prop: PropH, Value: v} }

// S is a specific entropy input, J/kg K.
func S(v float64) Input { return Input{Prop: PropS, Value: v} }

// X is a vapor quality input, kg/kg.
func X(v float64) Input { return Input{Prop: PropX, Value: v} }

var (
	// ErrUnknownFluid is returned when a backend has no data for the requested fluid.
	ErrUnknownFluid = errors.New("fluids: unknown fluid")

	// ErrUnknownMixture is returned when a mixture specification does not resolve
	// to a blend the backend knows about.
	ErrUnknownMixture = errors.New("fluids: unknown mixture")

	// ErrUnsupportedInputPair is returned when a backend cannot fix a state from
	// the given pair of properties.
	ErrUnsupportedInputPair = errors.New("fluids: unsupported input pair")

	// ErrOutOfRange is returned when an input lies outside the validity range of
	// the backend data.
	ErrOutOfRange = errors.New("fluids: input out of range")
)

// FluidState is a fixed thermodynamic state of a refrigerant.
// Quality is NaN outside the two-phase dome.
type FluidState struct {
	fluid string
	t     float64 // temperature, degree C
	p     float64 // pressure, Pa
	rho   float64 // mass density, kg/m3
	h     float64 // specific enthalpy, J/kg
	s     float64 // specific entropy, J/kg K
	x     float64 // vapor quality, kg/kg (NaN outside the dome)
}

// FluidName reports the fluid the state belongs to.
func (st FluidState) FluidName() string { return st.fluid }

// T is the temperature, degree C.
func (st FluidState) T() float64 { return st.t }

// P is the pressure, Pa.
func (st FluidState) P() float64 { return st.p }

// Rho is the mass density, kg/m3.
func (st FluidState) Rho() float64 { return st.rho }

// H is the specific enthalpy, J/kg.
func (st FluidState) H() float64 { return st.h }

// S is the specific entropy, J/kg K.
func (st FluidState) S() float64 { return st.s }

// X is the vapor quality, kg/kg. NaN outside the two-phase dome.
func (st FluidState) X() float64 { return st.x }

func (st FluidState) String() string {
	return fmt.Sprintf("%s(T=%.2f degC, P=%.0f Pa, h=%.0f J/kg)", st.fluid, st.t, st.p, st.h)
}

// PropertyBackend answers state queries for refrigerants. A backend is free
// to use whatever property source it wants (tabulated data, an external
// property server, ...); the rest of the toolkit only sees this interface.
type PropertyBackend interface {
	// State fixes a thermodynamic state from two independent properties.
	State(fluid string, in1, in2 Input) (FluidState, error)

	// Limits reports the saturation temperature range covered by the backend
	// for the fluid, degree C.
	Limits(fluid string) (tMin, tMax float64, err error)

	// Glide reports whether the fluid is a zeotropic blend with a temperature
	// glide between bubble and dew point.
	Glide(fluid string) (bool, error)
}

package vapor_compression

import (
	"errors"
	"fmt"
)

// Quantity names one compressor performance parameter, with the exact
// spelling used in manufacturer coefficient files.
type Quantity string

const (
	QuantityCoolingCapacity Quantity = "Qc_dot" // cooling capacity
	QuantityCompressorPower Quantity = "Wc_dot" // mechanical compressor power
	QuantityCurrent         Quantity = "I"      // drawn compressor current
	QuantityMassFlowRate    Quantity = "m_dot"  // refrigerant mass flow rate
	QuantityDischargeTemp   Quantity = "T_dis"  // discharge temperature
)

var knownQuantities = map[Quantity]bool{
	QuantityCoolingCapacity: true,
	QuantityCompressorPower: true,
	QuantityCurrent:         true,
	QuantityMassFlowRate:    true,
	QuantityDischargeTemp:   true,
}

var (
	// ErrUnknownQuantity is returned for a coefficient row whose name is not a
	// recognized performance parameter.
	ErrUnknownQuantity = errors.New("vapor_compression: unknown performance quantity")

	// ErrMissingQuantity is returned when a required performance parameter has
	// no coefficient row.
	ErrMissingQuantity = errors.New("vapor_compression: missing performance quantity")

	// ErrBadCoefficientCount is returned when a coefficient row does not hold
	// 10, 20 or 30 coefficients.
	ErrBadCoefficientCount = errors.New("vapor_compression: bad coefficient count")

	// ErrUnknownUnit is returned when a unit string is not in the conversion
	// registry.
	ErrUnknownUnit = errors.New("vapor_compression: unknown unit")

	// ErrNoConvergence is returned when an iterative solve does not settle
	// within its iteration budget.
	ErrNoConvergence = errors.New("vapor_compression: iteration did not converge")

	// ErrNotBracketed is returned when a root solve cannot bracket a solution
	// inside the physically admissible interval.
	ErrNotBracketed = errors.New("vapor_compression: no solution in the admissible interval")

	// ErrOutOfSpeedRange is returned when a speed lies outside the drive range.
	ErrOutOfSpeedRange = errors.New("vapor_compression: speed outside the drive range")
)

// Units maps the manufacturer units the polynomial outputs are expressed in.
// The default set matches the common selection-software convention; a copy
// can be adjusted per compressor before construction.
type Units map[Quantity]string

// speed pseudo-quantity key in the unit registry
const quantitySpeed Quantity = "speed"

// DefaultUnits returns the default manufacturer unit per quantity.
func DefaultUnits() Units {
	return Units{
		QuantityCoolingCapacity: "kW",
		QuantityCompressorPower: "kW",
		QuantityMassFlowRate:    "g/s",
		QuantityCurrent:         "A",
		QuantityDischargeTemp:   "degC",
		quantitySpeed:           "1/min",
	}
}

// toSI converts a polynomial output value in the registered unit to SI
// (W, kg/s, A, degC; speed to 1/s).
func toSI(value float64, unit string) (float64, error) {
	switch unit {
	case "W", "kg/s", "A", "degC", "1/s":
		return value, nil
	case "kW":
		return value * 1e3, nil
	case "g/s":
		return value * 1e-3, nil
	case "kg/h", "kg/hr":
		return value / 3600.0, nil
	case "1/min", "rpm":
		return value / 60.0, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
}

// fromSI converts an SI value back to the registered unit.
func fromSI(value float64, unit string) (float64, error) {
	si, err := toSI(1.0, unit)
	if err != nil {
		return 0, err
	}
	return value / si, nil
}

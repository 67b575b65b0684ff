package vapor_compression

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// coeffRow is one row of a manufacturer coefficient file: the quantity name
// followed by columns C0..C9, C0..C19 or C0..C29. Pointer fields stay nil
// for columns the file does not have.
type coeffRow struct {
	Name string   `csv:"name"`
	C0   *float64 `csv:"C0"`
	C1   *float64 `csv:"C1"`
	C2   *float64 `csv:"C2"`
	C3   *float64 `csv:"C3"`
	C4   *float64 `csv:"C4"`
	C5   *float64 `csv:"C5"`
	C6   *float64 `csv:"C6"`
	C7   *float64 `csv:"C7"`
	C8   *float64 `csv:"C8"`
	C9   *float64 `csv:"C9"`
	C10  *float64 `csv:"C10"`
	C11  *float64 `csv:"C11"`
	C12  *float64 `csv:"C12"`
	C13  *float64 `csv:"C13"`
	C14  *float64 `csv:"C14"`
	C15  *float64 `csv:"C15"`
	C16  *float64 `csv:"C16"`
	C17  *float64 `csv:"C17"`
	C18  *float64 `csv:"C18"`
	C19  *float64 `csv:"C19"`
	C20  *float64 `csv:"C20"`
	C21  *float64 `csv:"C21"`
	C22  *float64 `csv:"C22"`
	C23  *float64 `csv:"C23"`
	C24  *float64 `csv:"C24"`
	C25  *float64 `csv:"C25"`
	C26  *float64 `csv:"C26"`
	C27  *float64 `csv:"C27"`
	C28  *float64 `csv:"C28"`
	C29  *float64 `csv:"C29"`
}

func (r *coeffRow) coefficients() []float64 {
	ptrs := []*float64{
		r.C0, r.C1, r.C2, r.C3, r.C4, r.C5, r.C6, r.C7, r.C8, r.C9,
		r.C10, r.C11, r.C12, r.C13, r.C14, r.C15, r.C16, r.C17, r.C18, r.C19,
		r.C20, r.C21, r.C22, r.C23, r.C24, r.C25, r.C26, r.C27, r.C28, r.C29,
	}
	var out []float64
	for _, p := range ptrs {
		if p == nil {
			break
		}
		out = append(out, *p)
	}
	return out
}

// CoefficientTable holds the polynomial coefficients of one compressor, one
// coefficient set per performance quantity. All sets in a file share the
// same length: 10 for a fixed speed compressor, 20 or 30 for a variable
// speed compressor.
type CoefficientTable struct {
	coeffs map[Quantity][]float64
	n      int
}

/*
Load a manufacturer coefficient file.

    Args:
        filePath: path of the coefficient CSV file

    Returns:
        CoefficientTable with one validated coefficient set per quantity
*/
func LoadCoefficientTable(filePath string) (*CoefficientTable, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("coefficient file: %w", err)
	}
	defer file.Close()

	var rows []*coeffRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("coefficient file %s: %w", filePath, err)
	}
	return NewCoefficientTable(rows)
}

func NewCoefficientTable(rows []*coeffRow) (*CoefficientTable, error) {
	tb := &CoefficientTable{coeffs: make(map[Quantity][]float64)}
	for _, r := range rows {
		q := Quantity(r.Name)
		if !knownQuantities[q] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQuantity, r.Name)
		}
		c := r.coefficients()
		switch len(c) {
		case 10, 20, 30:
		default:
			return nil, fmt.Errorf("%w: %d coefficients for %s", ErrBadCoefficientCount, len(c), q)
		}
		if tb.n == 0 {
			tb.n = len(c)
		} else if tb.n != len(c) {
			return nil, fmt.Errorf("%w: %s has %d coefficients, others have %d",
				ErrBadCoefficientCount, q, len(c), tb.n)
		}
		tb.coeffs[q] = c
	}
	for _, q := range []Quantity{QuantityCoolingCapacity, QuantityCompressorPower, QuantityMassFlowRate} {
		if _, ok := tb.coeffs[q]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingQuantity, q)
		}
	}
	return tb, nil
}

// CoefficientCount reports the shared coefficient set length (10, 20 or 30).
func (tb *CoefficientTable) CoefficientCount() int {
	return tb.n
}

// Has reports whether the table carries a coefficient set for the quantity.
func (tb *CoefficientTable) Has(q Quantity) bool {
	_, ok := tb.coeffs[q]
	return ok
}

// VariableSpeed reports whether the coefficient sets depend on the
// compressor speed.
func (tb *CoefficientTable) VariableSpeed() bool {
	return tb.n > 10
}

/*
Evaluate the polynomial of a quantity at the working conditions.

    Args:
        q: the performance quantity
        te: evaporation temperature, degree C
        tc: condensation temperature, degree C
        speed: compressor speed in the manufacturer unit (ignored for a
            10-coefficient table)

    Returns:
        the quantity in the manufacturer unit
*/
func (tb *CoefficientTable) Eval(q Quantity, te, tc, speed float64) (float64, error) {
	c, ok := tb.coeffs[q]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingQuantity, q)
	}
	switch len(c) {
	case 10:
		return evalBivariateCubic(c, te, tc), nil
	case 20:
		return evalTrivariateCubic(c, te, tc, speed), nil
	case 30:
		return evalSpeedQuadratic(c, te, tc, speed), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrBadCoefficientCount, len(c))
	}
}

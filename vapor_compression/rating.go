package vapor_compression

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// RatingMap is compressor performance evaluated over a grid of evaporation
// and condensation temperatures, the table form selection software presents
// to the user. Rows follow the evaporation temperatures, columns the
// condensation temperatures.
type RatingMap struct {
	Te []float64 // grid of evaporation temperatures, degree C
	Tc []float64 // grid of condensation temperatures, degree C

	QcDot *mat.Dense // cooling capacity, W
	WcDot *mat.Dense // compressor power, W
	MDot  *mat.Dense // refrigerant mass flow rate, kg/s
	COP   *mat.Dense // coefficient of performance, -
}

/*
Evaluate a compressor over a temperature grid.

    Args:
        c: the compressor, at its current speed when variable
        te: evaporation temperatures, degree C
        tc: condensation temperatures, degree C

    Returns:
        RatingMap with one matrix per performance parameter
*/
func NewRatingMap(c Compressor, te, tc []float64) (*RatingMap, error) {
	if len(te) == 0 || len(tc) == 0 {
		return nil, fmt.Errorf("vapor_compression: empty rating grid")
	}
	saveTe, saveTc := c.Te(), c.Tc()
	defer c.SetConditions(saveTe, saveTc)

	rm := &RatingMap{
		Te:    te,
		Tc:    tc,
		QcDot: mat.NewDense(len(te), len(tc), nil),
		WcDot: mat.NewDense(len(te), len(tc), nil),
		MDot:  mat.NewDense(len(te), len(tc), nil),
		COP:   mat.NewDense(len(te), len(tc), nil),
	}
	for i, e := range te {
		for j, co := range tc {
			c.SetConditions(e, co)
			perf, err := c.Performance()
			if err != nil {
				return nil, fmt.Errorf("rating at Te=%.1f Tc=%.1f degC: %w", e, co, err)
			}
			rm.QcDot.Set(i, j, perf.QcDot)
			rm.WcDot.Set(i, j, perf.WcDot)
			rm.MDot.Set(i, j, perf.MDot)
			rm.COP.Set(i, j, perf.COP)
		}
	}
	return rm, nil
}

/*
Write the rating map to a CSV file: one block per performance parameter,
condensation temperatures across the header, evaporation temperatures down
the first column.

    Args:
        filePath: path of the CSV file to create
*/
func (rm *RatingMap) WriteCSV(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	blocks := []struct {
		name string
		m    *mat.Dense
	}{
		{"Qc_dot [W]", rm.QcDot},
		{"Wc_dot [W]", rm.WcDot},
		{"m_dot [kg/s]", rm.MDot},
		{"COP [-]", rm.COP},
	}
	for _, b := range blocks {
		header := make([]string, 0, len(rm.Tc)+1)
		header = append(header, b.name)
		for _, tc := range rm.Tc {
			header = append(header, strconv.FormatFloat(tc, 'f', 1, 64))
		}
		if err := writer.Write(header); err != nil {
			return err
		}
		for i, te := range rm.Te {
			row := make([]string, 0, len(rm.Tc)+1)
			row = append(row, strconv.FormatFloat(te, 'f', 1, 64))
			for j := range rm.Tc {
				row = append(row, strconv.FormatFloat(b.m.At(i, j), 'f', 3, 64))
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

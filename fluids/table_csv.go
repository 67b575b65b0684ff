package fluids

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// SatTableRow is one row of an external saturation table CSV file.
type SatTableRow struct {
	T    float64 `csv:"t"`     // saturation temperature, degree C
	P    float64 `csv:"p"`     // saturation pressure, Pa
	RhoF float64 `csv:"rho_f"` // saturated liquid density, kg/m3
	RhoG float64 `csv:"rho_g"` // saturated vapor density, kg/m3
	HF   float64 `csv:"h_f"`   // saturated liquid enthalpy, J/kg
	HG   float64 `csv:"h_g"`   // saturated vapor enthalpy, J/kg
	CpF  float64 `csv:"cp_f"`  // saturated liquid specific heat, J/kg K
	CpG  float64 `csv:"cp_g"`  // saturated vapor specific heat, J/kg K
}

/*
Load a saturation table from a CSV file.

    Args:
        name: fluid name to register the table under
        filePath: path of the CSV file
        glide: whether the fluid is a zeotropic blend with temperature glide

    Returns:
        SatTable ready for TabularBackend.Register
*/
func LoadSatTable(name, filePath string, glide bool) (*SatTable, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("saturation table %s: %w", name, err)
	}
	defer file.Close()

	var rows []*SatTableRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("saturation table %s: %w", name, err)
	}

	tb := &SatTable{Name: name, Glide: glide}
	for _, r := range rows {
		tb.T = append(tb.T, r.T)
		tb.P = append(tb.P, r.P)
		tb.RhoF = append(tb.RhoF, r.RhoF)
		tb.RhoG = append(tb.RhoG, r.RhoG)
		tb.HF = append(tb.HF, r.HF)
		tb.HG = append(tb.HG, r.HG)
		tb.CpF = append(tb.CpF, r.CpF)
		tb.CpG = append(tb.CpG, r.CpG)
	}
	if err := tb.validate(); err != nil {
		return nil, err
	}
	return tb, nil
}

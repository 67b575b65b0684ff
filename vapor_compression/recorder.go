package vapor_compression

import (
	"encoding/csv"
	"os"
	"strconv"
)

// SweepRecorder collects the outputs of a series of machine simulations,
// one record per working point, and writes them out as a CSV table.
type SweepRecorder struct {
	t_out_ns []float64 // condenser inlet (outside) air temperature, degree C
	te_ns    []float64 // evaporation temperature, degree C
	tc_ns    []float64 // condensation temperature, degree C
	qc_ns    []float64 // cooling capacity, W
	qh_ns    []float64 // heating capacity, W
	wc_ns    []float64 // compressor power, W
	cop_ns   []float64 // coefficient of performance, -
	m_ns     []float64 // refrigerant mass flow rate, kg/s
}

// NewSweepRecorder creates an empty recorder.
func NewSweepRecorder() *SweepRecorder {
	return &SweepRecorder{}
}

/*
Record one solved working point.

    Args:
        tOut: condenser inlet air temperature, degree C
        m: the machine, already simulated
*/
func (r *SweepRecorder) Record(tOut float64, m *SingleStageVCMachine) error {
	perf, err := m.Performance()
	if err != nil {
		return err
	}
	te, err := m.Te()
	if err != nil {
		return err
	}
	tc, err := m.Tc()
	if err != nil {
		return err
	}

	r.t_out_ns = append(r.t_out_ns, tOut)
	r.te_ns = append(r.te_ns, te)
	r.tc_ns = append(r.tc_ns, tc)
	r.qc_ns = append(r.qc_ns, perf.QcDot)
	r.qh_ns = append(r.qh_ns, perf.QhDot)
	r.wc_ns = append(r.wc_ns, perf.WcDot)
	r.cop_ns = append(r.cop_ns, perf.COP)
	r.m_ns = append(r.m_ns, perf.MDot)
	return nil
}

// Len reports the number of recorded working points.
func (r *SweepRecorder) Len() int {
	return len(r.t_out_ns)
}

// Series returns a recorded column by name for charting. Known names:
// t_out, Te, Tc, Qc_dot, Qh_dot, Wc_dot, COP, m_dot.
func (r *SweepRecorder) Series(name string) []float64 {
	switch name {
	case "t_out":
		return r.t_out_ns
	case "Te":
		return r.te_ns
	case "Tc":
		return r.tc_ns
	case "Qc_dot":
		return r.qc_ns
	case "Qh_dot":
		return r.qh_ns
	case "Wc_dot":
		return r.wc_ns
	case "COP":
		return r.cop_ns
	case "m_dot":
		return r.m_ns
	default:
		return nil
	}
}

/*
Write the recorded sweep to a CSV file, one row per working point.

    Args:
        filePath: path of the CSV file to create
*/
func (r *SweepRecorder) WriteCSV(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"t_out [degC]", "Te [degC]", "Tc [degC]",
		"Qc_dot [W]", "Qh_dot [W]", "Wc_dot [W]", "COP [-]", "m_dot [kg/s]",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	f := func(v float64, prec int) string {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
	for n := range r.t_out_ns {
		row := []string{
			f(r.t_out_ns[n], 2),
			f(r.te_ns[n], 2),
			f(r.tc_ns[n], 2),
			f(r.qc_ns[n], 1),
			f(r.qh_ns[n], 1),
			f(r.wc_ns[n], 1),
			f(r.cop_ns[n], 3),
			f(r.m_ns[n], 5),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

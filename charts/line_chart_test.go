package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineChartSave(t *testing.T) {
	chart := NewLineChart()
	chart.SetTitle("COP over outside air temperature")
	chart.SetXTitle("T_out [degC]")
	chart.SetYTitle("COP [-]")

	xs := []float64{28.0, 32.0, 36.0, 40.0}
	require.NoError(t, chart.AddXYData("machine", xs, []float64{4.1, 3.6, 3.2, 2.9}))
	require.NoError(t, chart.AddXYData("rated", xs, []float64{4.0, 3.5, 3.1, 2.8}))

	path := filepath.Join(t.TempDir(), "cop.png")
	require.NoError(t, chart.Save(8.0, 6.0, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestLineChartLengthMismatch(t *testing.T) {
	chart := NewLineChart()
	err := chart.AddXYData("bad", []float64{1, 2, 3}, []float64{1, 2})
	assert.Error(t, err)
}

package fluids

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTableCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSatTable(t *testing.T) {
	path := writeTableCSV(t,
		"t,p,rho_f,rho_g,h_f,h_g,cp_f,cp_g\n"+
			"-10,2.0e5,1330,10,185000,402000,1150,710\n"+
			"0,3.0e5,1300,14,200000,405000,1170,760\n"+
			"10,4.1e5,1270,20,211000,408000,1190,820\n"+
			"20,5.7e5,1230,28,223000,411000,1220,890\n")

	tb, err := LoadSatTable("RX", path, false)
	require.NoError(t, err)
	assert.Equal(t, "RX", tb.Name)
	assert.False(t, tb.Glide)
	require.Len(t, tb.T, 4)

	b := NewTabularBackend()
	require.NoError(t, b.Register(tb))

	// the loaded table serves states at its own rows
	st, err := b.State("RX", T(0.0), X(0.0))
	require.NoError(t, err)
	assert.InDelta(t, 3.0e5, st.P(), 10.0)
	assert.InDelta(t, 200e3, st.H(), 1.0)

	st, err = b.State("RX", T(10.0), X(1.0))
	require.NoError(t, err)
	assert.InDelta(t, 408e3, st.H(), 1.0)
}

func TestLoadSatTableErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSatTable("RX", filepath.Join(t.TempDir(), "no_such.csv"), false)
		assert.Error(t, err)
	})

	t.Run("pressures not increasing", func(t *testing.T) {
		path := writeTableCSV(t,
			"t,p,rho_f,rho_g,h_f,h_g,cp_f,cp_g\n"+
				"-10,4.0e5,1330,10,185000,402000,1150,710\n"+
				"0,3.0e5,1300,14,200000,405000,1170,760\n"+
				"10,4.1e5,1270,20,211000,408000,1190,820\n")
		_, err := LoadSatTable("RX", path, false)
		assert.Error(t, err)
	})

	t.Run("liquid enthalpies not increasing", func(t *testing.T) {
		path := writeTableCSV(t,
			"t,p,rho_f,rho_g,h_f,h_g,cp_f,cp_g\n"+
				"-10,2.0e5,1330,10,185000,402000,1150,710\n"+
				"0,3.0e5,1300,14,212000,405000,1170,760\n"+
				"10,4.1e5,1270,20,211000,408000,1190,820\n")
		_, err := LoadSatTable("RX", path, false)
		assert.Error(t, err)
	})

	t.Run("too few rows", func(t *testing.T) {
		path := writeTableCSV(t,
			"t,p,rho_f,rho_g,h_f,h_g,cp_f,cp_g\n"+
				"0,3.0e5,1300,14,200000,405000,1170,760\n"+
				"10,4.1e5,1270,20,211000,408000,1190,820\n")
		_, err := LoadSatTable("RX", path, false)
		assert.Error(t, err)
	})
}

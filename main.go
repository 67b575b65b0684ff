package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"hvac/charts"
	"hvac/fluids"
	"hvac/vapor_compression"
)

// Config describes one machine simulation case, read from a JSON file.
type Config struct {
	CompressorCoeffFile string  `json:"compressor_coeff_file"`
	Refrigerant         string  `json:"refrigerant"`
	Superheat           float64 `json:"superheat"`  // K
	Subcooling          float64 `json:"subcooling"` // K

	// RefrigerantTableFile loads a saturation table CSV for a refrigerant
	// the built-in backend does not carry; the table is registered under
	// the refrigerant name above.
	RefrigerantTableFile string `json:"refrigerant_table_file,omitempty"`
	RefrigerantGlide     bool   `json:"refrigerant_glide,omitempty"`

	// Units overrides the manufacturer unit per quantity, for example
	// {"m_dot": "kg/hr", "speed": "1/s"}.
	CoeffUnits map[string]string `json:"coeff_units,omitempty"`

	// Variable speed drives only; both zero selects a fixed speed
	// compressor.
	MinSpeed float64 `json:"min_speed,omitempty"` // 1/s
	MaxSpeed float64 `json:"max_speed,omitempty"` // 1/s
	Speed    float64 `json:"speed,omitempty"`     // 1/s

	EpsEva float64 `json:"eps_eva"` // -
	EpsCon float64 `json:"eps_con"` // -

	// Air flow through each coil, either as mass flow or as volumetric
	// flow at the standard air density.
	LTMassFlow   float64 `json:"lt_ma,omitempty"` // kg/s
	HTMassFlow   float64 `json:"ht_ma,omitempty"` // kg/s
	LTVolumeFlow float64 `json:"lt_va,omitempty"` // m3/s
	HTVolumeFlow float64 `json:"ht_va,omitempty"` // m3/s

	IndoorTdb float64 `json:"indoor_tdb"` // degree C
	IndoorRH  float64 `json:"indoor_rh"`  // %

	// Sweep of the condenser inlet (outside) air temperature, degree C.
	TOutStart float64 `json:"t_out_start"`
	TOutStop  float64 `json:"t_out_stop"`
	TOutStep  float64 `json:"t_out_step"`
	OutsideRH float64 `json:"outside_rh"` // %
}

func load_config(filePath string) Config {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatal(err)
	}
	var cfg Config
	if err := json.Unmarshal(bytes, &cfg); err != nil {
		log.Fatalf("parse `%s`: %v", filePath, err)
	}
	if err := validate_sweep(cfg); err != nil {
		log.Fatalf("case file `%s`: %v", filePath, err)
	}
	return cfg
}

// validate_sweep rejects sweep ranges the loop in run cannot terminate on.
func validate_sweep(cfg Config) error {
	if cfg.TOutStep <= 0 {
		return fmt.Errorf("t_out_step %f K must be positive", cfg.TOutStep)
	}
	if cfg.TOutStop < cfg.TOutStart {
		return fmt.Errorf("t_out_stop %f degC below t_out_start %f degC", cfg.TOutStop, cfg.TOutStart)
	}
	return nil
}

func make_compressor(cfg Config) (vapor_compression.Compressor, error) {
	var backend fluids.PropertyBackend
	if cfg.RefrigerantTableFile != "" {
		tb, err := fluids.LoadSatTable(cfg.Refrigerant, cfg.RefrigerantTableFile, cfg.RefrigerantGlide)
		if err != nil {
			return nil, err
		}
		b := fluids.NewTabularBackend()
		if err := b.Register(tb); err != nil {
			return nil, err
		}
		backend = b
	}
	refrigerant, err := fluids.NewFluid(cfg.Refrigerant, backend)
	if err != nil {
		return nil, err
	}
	spec := vapor_compression.CompressorSpec{
		CoeffFile:   cfg.CompressorCoeffFile,
		Superheat:   cfg.Superheat,
		Subcooling:  cfg.Subcooling,
		Refrigerant: refrigerant,
		MinSpeed:    cfg.MinSpeed,
		MaxSpeed:    cfg.MaxSpeed,
	}
	if len(cfg.CoeffUnits) > 0 {
		spec.Units = vapor_compression.Units{}
		for q, unit := range cfg.CoeffUnits {
			spec.Units[vapor_compression.Quantity(q)] = unit
		}
	}
	if cfg.MaxSpeed > 0 {
		c, err := vapor_compression.NewVariableSpeedCompressor(spec)
		if err != nil {
			return nil, err
		}
		if cfg.Speed > 0 {
			if err := c.SetSpeed(cfg.Speed); err != nil {
				return nil, err
			}
		}
		return c, nil
	}
	return vapor_compression.NewFixedSpeedCompressor(spec)
}

/*
Run one simulation case: sweep the outside air temperature, record the
working points and write the result table, the rating map and the charts
into the output directory.

    Args:
        config_path: path of the case JSON file
        output_data_dir: path of the output directory
        charts_saved: whether the chart images are written
*/
func run(config_path string, output_data_dir string, charts_saved bool) {
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	log.Printf("Read case file `%s`", config_path)
	cfg := load_config(config_path)

	compressor, err := make_compressor(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Compressor on %s, superheat %.1f K, subcooling %.1f K",
		compressor.Refrigerant().Name(), cfg.Superheat, cfg.Subcooling)

	indoor, err := fluids.NewHumidAir(cfg.IndoorTdb, cfg.IndoorRH)
	if err != nil {
		log.Fatal(err)
	}
	ltMa := cfg.LTMassFlow
	if ltMa == 0 {
		ltMa = fluids.AirMassFlowRate(cfg.LTVolumeFlow)
	}
	htMa := cfg.HTMassFlow
	if htMa == 0 {
		htMa = fluids.AirMassFlowRate(cfg.HTVolumeFlow)
	}
	machine, err := vapor_compression.NewSingleStageVCMachine(vapor_compression.MachineSpec{
		Compressor: compressor,
		EpsEva:     cfg.EpsEva,
		EpsCon:     cfg.EpsCon,
		LTMassFlow: ltMa,
		HTMassFlow: htMa,
		LTAirIn:    &indoor,
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Sweep outside air %.1f .. %.1f degC, step %.1f K",
		cfg.TOutStart, cfg.TOutStop, cfg.TOutStep)
	recorder := vapor_compression.NewSweepRecorder()
	for tOut := cfg.TOutStart; tOut <= cfg.TOutStop+1e-9; tOut += cfg.TOutStep {
		outside, err := fluids.NewHumidAir(tOut, cfg.OutsideRH)
		if err != nil {
			log.Fatal(err)
		}
		machine.SetHTAirIn(outside)
		if err := machine.Simulate(); err != nil {
			log.Fatalf("steady state at T_out=%.1f degC: %v", tOut, err)
		}
		if err := recorder.Record(tOut, machine); err != nil {
			log.Fatal(err)
		}
	}

	results_path := filepath.Join(output_data_dir, "results.csv")
	log.Printf("Save sweep results to `%s`", results_path)
	if err := recorder.WriteCSV(results_path); err != nil {
		log.Fatal(err)
	}

	te := []float64{-10, -5, 0, 5, 10, 15}
	tc := []float64{35, 40, 45, 50, 55}
	rating, err := vapor_compression.NewRatingMap(compressor, te, tc)
	if err != nil {
		log.Fatal(err)
	}
	rating_path := filepath.Join(output_data_dir, "rating.csv")
	log.Printf("Save rating map to `%s`", rating_path)
	if err := rating.WriteCSV(rating_path); err != nil {
		log.Fatal(err)
	}

	if charts_saved {
		save_charts(cfg, machine, recorder, output_data_dir)
	}
}

func save_charts(
	cfg Config,
	machine *vapor_compression.SingleStageVCMachine,
	recorder *vapor_compression.SweepRecorder,
	output_data_dir string,
) {
	tOut := recorder.Series("t_out")

	cop_chart := charts.NewLineChart()
	cop_chart.SetTitle("COP over outside air temperature")
	cop_chart.SetXTitle("T_out [degC]")
	cop_chart.SetYTitle("COP [-]")
	if err := cop_chart.AddXYData("COP", tOut, recorder.Series("COP")); err != nil {
		log.Fatal(err)
	}
	cop_path := filepath.Join(output_data_dir, "cop.png")
	log.Printf("Save COP chart to `%s`", cop_path)
	if err := cop_chart.Save(8.0, 6.0, cop_path); err != nil {
		log.Fatal(err)
	}

	q_chart := charts.NewLineChart()
	q_chart.SetTitle("Capacity and power over outside air temperature")
	q_chart.SetXTitle("T_out [degC]")
	q_chart.SetYTitle("heat flow [W]")
	for _, name := range []string{"Qc_dot", "Qh_dot", "Wc_dot"} {
		if err := q_chart.AddXYData(name, tOut, recorder.Series(name)); err != nil {
			log.Fatal(err)
		}
	}
	q_path := filepath.Join(output_data_dir, "capacity.png")
	log.Printf("Save capacity chart to `%s`", q_path)
	if err := q_chart.Save(8.0, 6.0, q_path); err != nil {
		log.Fatal(err)
	}

	// log P-h diagram at the last solved working point; skipped for
	// refrigerants with temperature glide
	compressor := machine.Compressor()
	if compressor.Refrigerant().Glide() {
		log.Printf("Refrigerant %s has temperature glide, skip the log P-h diagram",
			compressor.Refrigerant().Name())
		return
	}
	te, err := machine.Te()
	if err != nil {
		log.Fatal(err)
	}
	tc, err := machine.Tc()
	if err != nil {
		log.Fatal(err)
	}
	perf, err := machine.Performance()
	if err != nil {
		log.Fatal(err)
	}
	diagram, err := charts.NewLogPhDiagram(compressor.Refrigerant())
	if err != nil {
		log.Fatal(err)
	}
	err = diagram.SetCycle(&charts.StandardVaporCompressionCycle{
		Refrigerant:         compressor.Refrigerant(),
		Te:                  te,
		Tc:                  tc,
		EvaporatorSuperheat: cfg.Superheat,
		Subcooling:          cfg.Subcooling,
		EtaIs:               perf.EtaIs,
	})
	if err != nil {
		log.Fatal(err)
	}
	ph_path := filepath.Join(output_data_dir, "log_ph.png")
	log.Printf("Save log P-h diagram to `%s`", ph_path)
	if err := diagram.Save(10.0, 7.0, ph_path); err != nil {
		log.Fatal(err)
	}
}

func main() {
	var config_path string
	flag.StringVar(&config_path, "c", "example/machine_r22.json", "path of the case JSON file")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "path of the output directory")

	var charts_saved bool
	flag.BoolVar(&charts_saved, "charts", true, "whether the chart images are written")

	flag.Parse()

	fmt.Printf("config_path: %s\n", config_path)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("charts_saved: %t\n", charts_saved)

	start := time.Now()

	run(config_path, output_data_dir, charts_saved)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}

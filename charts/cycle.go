package charts

import (
	"fmt"

	"hvac/fluids"
)

// StandardVaporCompressionCycle is the idealized single stage cycle: no
// pressure loss in the coils or the lines, isenthalpic expansion, a
// compressor described by its isentropic efficiency.
type StandardVaporCompressionCycle struct {
	Refrigerant *fluids.Fluid

	Te float64 // evaporation temperature, degree C
	Tc float64 // condensation temperature, degree C

	EvaporatorSuperheat  float64 // useful superheat at the evaporator exit, K
	SuctionLineSuperheat float64 // additional superheat along the suction line, K
	Subcooling           float64 // subcooling at the condenser exit, K

	EtaIs float64 // isentropic efficiency of the compressor, fraction in (0, 1]
}

// CyclePoints are the refrigerant states the cycle passes through, in flow
// order starting at the evaporator inlet.
type CyclePoints struct {
	EvaporatorIn  fluids.FluidState // two-phase mixture after the expansion device
	EvaporatorOut fluids.FluidState // vapor with the useful superheat
	Suction       fluids.FluidState // compressor inlet, after the suction line
	Discharge     fluids.FluidState // compressor outlet
	SatVaporCond  fluids.FluidState // saturated vapor at the condensing pressure
	CondenserOut  fluids.FluidState // subcooled liquid at the condenser exit
}

/*
Calculate the refrigerant states of the cycle.

    Returns:
        the corner states, in flow order
*/
func (cy *StandardVaporCompressionCycle) Points() (*CyclePoints, error) {
	if cy.Refrigerant == nil {
		return nil, fmt.Errorf("charts: cycle refrigerant not set")
	}
	if cy.EtaIs <= 0 || cy.EtaIs > 1 {
		return nil, fmt.Errorf("charts: isentropic efficiency %f outside (0, 1]", cy.EtaIs)
	}
	r := cy.Refrigerant

	satEva, err := r.State(fluids.T(cy.Te), fluids.X(1.0))
	if err != nil {
		return nil, fmt.Errorf("evaporator saturation: %w", err)
	}
	pe := satEva.P()

	evaOut := satEva
	if cy.EvaporatorSuperheat > 0 {
		evaOut, err = r.State(fluids.T(cy.Te+cy.EvaporatorSuperheat), fluids.P(pe))
		if err != nil {
			return nil, fmt.Errorf("evaporator exit: %w", err)
		}
	}

	suction := evaOut
	if cy.SuctionLineSuperheat > 0 {
		suction, err = r.State(
			fluids.T(cy.Te+cy.EvaporatorSuperheat+cy.SuctionLineSuperheat), fluids.P(pe))
		if err != nil {
			return nil, fmt.Errorf("suction gas: %w", err)
		}
	}

	satCon, err := r.State(fluids.T(cy.Tc), fluids.X(1.0))
	if err != nil {
		return nil, fmt.Errorf("condenser saturation: %w", err)
	}
	pc := satCon.P()

	hIs, err := r.State(fluids.P(pc), fluids.S(suction.S()))
	if err != nil {
		return nil, fmt.Errorf("isentropic discharge: %w", err)
	}
	h2 := suction.H() + (hIs.H()-suction.H())/cy.EtaIs
	discharge, err := r.State(fluids.P(pc), fluids.H(h2))
	if err != nil {
		return nil, fmt.Errorf("discharge gas: %w", err)
	}

	liquid, err := r.State(fluids.T(cy.Tc), fluids.X(0.0))
	if err != nil {
		return nil, fmt.Errorf("condenser exit: %w", err)
	}
	if cy.Subcooling > 0 {
		liquid, err = r.State(fluids.T(cy.Tc-cy.Subcooling), fluids.P(pc))
		if err != nil {
			return nil, fmt.Errorf("condenser exit: %w", err)
		}
	}

	mixture, err := r.State(fluids.P(pe), fluids.H(liquid.H()))
	if err != nil {
		return nil, fmt.Errorf("evaporator inlet: %w", err)
	}

	return &CyclePoints{
		EvaporatorIn:  mixture,
		EvaporatorOut: evaOut,
		Suction:       suction,
		Discharge:     discharge,
		SatVaporCond:  satCon,
		CondenserOut:  liquid,
	}, nil
}

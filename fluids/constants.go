package fluids

// Specific heat of dry air, J/kg K
func get_c_a() float64 {
	return 1005.0
}

// Specific heat of water vapor, J/kg K
func get_c_v() float64 {
	return 1846.0
}

// Latent heat of evaporation of water at 0 degree C, J/kg
func get_l_wtr() float64 {
	return 2501000.0
}

// Density of air, kg/m3
func get_rho_a() float64 {
	return 1.2
}

/*
Convert a volumetric air flow rate to a mass flow rate with the standard
air density.

    Args:
        va: volumetric air flow rate, m3/s

    Returns:
        air mass flow rate, kg/s
*/
func AirMassFlowRate(va float64) float64 {
	return get_rho_a() * va
}

// Absolute zero offset, K
const t_zero = 273.15

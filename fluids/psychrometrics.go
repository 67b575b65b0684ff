package fluids

import (
	"math"
)

/*
Calculate the relative humidity.

    Args:
        p_v: water vapor pressure, Pa
        p_vs: saturation water vapor pressure, Pa

    Returns:
        relative humidity, %
*/
func get_rh(p_v, p_vs float64) float64 {
	return p_v / p_vs * 100.0
}

/*
Calculate the humidity ratio from the water vapor pressure.

    Args:
        p_v: water vapor pressure, Pa

    Returns:
        humidity ratio, kg/kg(DA)
*/
func get_w(p_v float64) float64 {
	f := _get_f()

	return 0.622 * p_v / (f - p_v)
}

/*
Calculate the water vapor pressure from the humidity ratio.

    Args:
        w: humidity ratio, kg/kg(DA)

    Returns:
        water vapor pressure, Pa
*/
func get_p_v(w float64) float64 {
	f := _get_f()

	return f * w / (w + 0.622)
}

/*
Calculate the saturation water vapor pressure over liquid water or ice.

    Args:
        theta: air temperature, degree C

    Returns:
        saturation water vapor pressure, Pa
*/
func get_p_vs(theta float64) float64 {
	t := theta + t_zero

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	var p_vs float64
	if theta >= 0.0 {
		p_vs = math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	} else {
		p_vs = math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
	}

	return p_vs
}

/*
Calculate the specific enthalpy of moist air.

    Args:
        theta: dry bulb temperature, degree C
        w: humidity ratio, kg/kg(DA)

    Returns:
        specific enthalpy, J/kg(DA)
*/
func get_h_air(theta, w float64) float64 {
	return get_c_a()*theta + w*(get_l_wtr()+get_c_v()*theta)
}

/*
Calculate the dew point temperature for a given water vapor pressure
by bisection on the saturation curve.

    Args:
        p_v: water vapor pressure, Pa

    Returns:
        dew point temperature, degree C
*/
func get_theta_dp(p_v float64) float64 {
	low, high := -60.0, 70.0
	for i := 0; i < 60; i++ {
		mid := 0.5 * (low + high)
		if get_p_vs(mid) < p_v {
			low = mid
		} else {
			high = mid
		}
	}
	return 0.5 * (low + high)
}

// Atmospheric pressure, Pa
func _get_f() float64 {
	return 101325.0
}

package fluids

import (
	"fmt"
)

// HumidAir is the state of a moist air stream, fixed by the dry bulb
// temperature and the humidity ratio. Enthalpy is expressed per kg of
// dry air with the zero point at 0 degree C, dry.
type HumidAir struct {
	tdb float64 // dry bulb temperature, degree C
	w   float64 // humidity ratio, kg/kg(DA)
}

/*
Create a moist air state from dry bulb temperature and relative humidity.

    Args:
        tdb: dry bulb temperature, degree C
        rh: relative humidity, %

    Returns:
        HumidAir value
*/
func NewHumidAir(tdb, rh float64) (HumidAir, error) {
	if rh < 0.0 || rh > 100.0 {
		return HumidAir{}, fmt.Errorf("relative humidity %f %% out of range [0, 100]", rh)
	}
	p_v := rh / 100.0 * get_p_vs(tdb)
	return HumidAir{tdb: tdb, w: get_w(p_v)}, nil
}

/*
Create a moist air state from dry bulb temperature and humidity ratio.

    Args:
        tdb: dry bulb temperature, degree C
        w: humidity ratio, kg/kg(DA)

    Returns:
        HumidAir value
*/
func NewHumidAirFromW(tdb, w float64) (HumidAir, error) {
	if w < 0.0 {
		return HumidAir{}, fmt.Errorf("humidity ratio %f kg/kg(DA) must not be negative", w)
	}
	w_s := get_w(get_p_vs(tdb))
	if w > w_s {
		return HumidAir{}, fmt.Errorf("humidity ratio %f kg/kg(DA) exceeds saturation %f kg/kg(DA) at %f degree C", w, w_s, tdb)
	}
	return HumidAir{tdb: tdb, w: w}, nil
}

/*
Create a moist air state from dry bulb and wet bulb temperature, using the
psychrometric relation along the constant wet bulb line.

    Args:
        tdb: dry bulb temperature, degree C
        twb: wet bulb temperature, degree C

    Returns:
        HumidAir value
*/
func NewHumidAirFromTwb(tdb, twb float64) (HumidAir, error) {
	if twb > tdb {
		return HumidAir{}, fmt.Errorf("wet bulb temperature %f degree C above dry bulb %f degree C", twb, tdb)
	}
	w := _get_w_from_twb(tdb, twb)
	return NewHumidAirFromW(tdb, w)
}

/*
Humidity ratio from dry bulb and wet bulb temperature.

    Args:
        tdb: dry bulb temperature, degree C
        twb: wet bulb temperature, degree C

    Returns:
        humidity ratio, kg/kg(DA)
*/
func _get_w_from_twb(tdb, twb float64) float64 {
	w_s_wb := get_w(get_p_vs(twb))
	return ((2501.0-2.326*twb)*w_s_wb - 1.006*(tdb-twb)) / (2501.0 + 1.86*tdb - 4.186*twb)
}

// Dry bulb temperature, degree C
func (a HumidAir) Tdb() float64 {
	return a.tdb
}

// Humidity ratio, kg/kg(DA)
func (a HumidAir) W() float64 {
	return a.w
}

// Water vapor pressure, Pa
func (a HumidAir) Pv() float64 {
	return get_p_v(a.w)
}

// Relative humidity, %
func (a HumidAir) RH() float64 {
	return get_rh(a.Pv(), get_p_vs(a.tdb))
}

// Specific enthalpy, J/kg(DA)
func (a HumidAir) H() float64 {
	return get_h_air(a.tdb, a.w)
}

// Dew point temperature, degree C
func (a HumidAir) DewPoint() float64 {
	return get_theta_dp(a.Pv())
}

/*
Wet bulb temperature found by bisection on the constant wet bulb line
through the state.

    Returns:
        wet bulb temperature, degree C
*/
func (a HumidAir) WetBulb() float64 {
	low, high := -60.0, a.tdb
	for i := 0; i < 60; i++ {
		mid := 0.5 * (low + high)
		if _get_w_from_twb(a.tdb, mid) < a.w {
			low = mid
		} else {
			high = mid
		}
	}
	return 0.5 * (low + high)
}

// Specific heat of the moist air per kg of dry air, J/kg(DA) K
func (a HumidAir) Cp() float64 {
	return get_c_a() + a.w*get_c_v()
}

func (a HumidAir) String() string {
	return fmt.Sprintf("HumidAir(Tdb=%.2f degC, W=%.5f kg/kg(DA), RH=%.1f %%)", a.tdb, a.w, a.RH())
}

/*
Create a moist air state from specific enthalpy and humidity ratio, the
pair that fixes a coil outlet state after an energy balance.

    Args:
        h: specific enthalpy, J/kg(DA)
        w: humidity ratio, kg/kg(DA)

    Returns:
        HumidAir value
*/
func NewHumidAirFromH(h, w float64) (HumidAir, error) {
	tdb := (h - w*get_l_wtr()) / (get_c_a() + w*get_c_v())
	return NewHumidAirFromW(tdb, w)
}

/*
Specific enthalpy of saturated moist air at the given temperature. This is
the driving potential used in wet coil effectiveness models.

    Args:
        theta: air temperature, degree C

    Returns:
        specific enthalpy, J/kg(DA)
*/
func SaturatedAirEnthalpy(theta float64) float64 {
	return get_h_air(theta, get_w(get_p_vs(theta)))
}

/*
Humidity ratio of saturated moist air at the given temperature.

    Args:
        theta: air temperature, degree C

    Returns:
        humidity ratio, kg/kg(DA)
*/
func SaturatedAirW(theta float64) float64 {
	return get_w(get_p_vs(theta))
}

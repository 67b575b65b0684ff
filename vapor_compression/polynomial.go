package vapor_compression

/*
Evaluate the 10-coefficient bivariate cubic used for fixed speed
compressors (the AHRI 540 form):

    y = C0 + C1 te + C2 tc + C3 te^2 + C4 te tc + C5 tc^2
        + C6 te^3 + C7 te^2 tc + C8 te tc^2 + C9 tc^3

    Args:
        c: the 10 coefficients C0..C9
        te: evaporation temperature, degree C
        tc: condensation temperature, degree C
*/
func evalBivariateCubic(c []float64, te, tc float64) float64 {
	te2, tc2 := te*te, tc*tc
	return c[0] +
		c[1]*te + c[2]*tc +
		c[3]*te2 + c[4]*te*tc + c[5]*tc2 +
		c[6]*te2*te + c[7]*te2*tc + c[8]*te*tc2 + c[9]*tc2*tc
}

/*
Evaluate the 20-coefficient full trivariate cubic in evaporation
temperature, condensation temperature and compressor speed:

    y = C0 + C1 te + C2 tc + C3 s
        + C4 te^2 + C5 te tc + C6 te s + C7 tc^2 + C8 tc s + C9 s^2
        + C10 te^3 + C11 te^2 tc + C12 te^2 s + C13 te tc^2 + C14 te tc s
        + C15 te s^2 + C16 tc^3 + C17 tc^2 s + C18 tc s^2 + C19 s^3

    Args:
        c: the 20 coefficients C0..C19
        te: evaporation temperature, degree C
        tc: condensation temperature, degree C
        s: compressor speed in the manufacturer unit
*/
func evalTrivariateCubic(c []float64, te, tc, s float64) float64 {
	te2, tc2, s2 := te*te, tc*tc, s*s
	return c[0] +
		c[1]*te + c[2]*tc + c[3]*s +
		c[4]*te2 + c[5]*te*tc + c[6]*te*s + c[7]*tc2 + c[8]*tc*s + c[9]*s2 +
		c[10]*te2*te + c[11]*te2*tc + c[12]*te2*s + c[13]*te*tc2 + c[14]*te*tc*s +
		c[15]*te*s2 + c[16]*tc2*tc + c[17]*tc2*s + c[18]*tc*s2 + c[19]*s2*s
}

/*
Evaluate the 30-coefficient form: the bivariate cubic of a fixed speed
compressor with every coefficient quadratic in the speed,

    Ci(s) = C(3i) + C(3i+1) s + C(3i+2) s^2

    Args:
        c: the 30 coefficients C0..C29
        te: evaporation temperature, degree C
        tc: condensation temperature, degree C
        s: compressor speed in the manufacturer unit
*/
func evalSpeedQuadratic(c []float64, te, tc, s float64) float64 {
	var bi [10]float64
	for i := 0; i < 10; i++ {
		bi[i] = c[3*i] + c[3*i+1]*s + c[3*i+2]*s*s
	}
	return evalBivariateCubic(bi[:], te, tc)
}

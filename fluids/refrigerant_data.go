package fluids

// Built-in saturation tables. Enthalpies follow the 200 kJ/kg saturated
// liquid at 0 degree C reference. Data rounded from published saturation
// tables; the interpolation error between rows stays well below the
// uncertainty of manufacturer polynomial coefficients.

var builtinTables = []*SatTable{
	{
		Name: "R22",
		T:    []float64{-40, -30, -20, -10, 0, 10, 20, 30, 40, 50, 60},
		P: []float64{
			1.053e5, 1.635e5, 2.453e5, 3.543e5, 4.976e5,
			6.807e5, 9.099e5, 11.919e5, 15.335e5, 19.423e5, 24.266e5,
		},
		RhoF: []float64{1409, 1382, 1355, 1327, 1297, 1266, 1233, 1198, 1160, 1119, 1073},
		RhoG: []float64{4.87, 7.38, 10.80, 15.34, 21.26, 28.88, 38.57, 50.82, 66.27, 85.73, 110.4},
		HF: []float64{
			156.1e3, 166.9e3, 177.9e3, 188.9e3, 200.0e3,
			211.4e3, 223.0e3, 235.0e3, 247.5e3, 260.5e3, 274.3e3,
		},
		HG: []float64{
			389.3e3, 393.7e3, 398.0e3, 402.0e3, 405.4e3,
			408.4e3, 410.9e3, 412.7e3, 413.8e3, 413.7e3, 412.1e3,
		},
		CpF: []float64{1099, 1112, 1127, 1145, 1166, 1192, 1223, 1262, 1313, 1382, 1480},
		CpG: []float64{605, 636, 671, 711, 759, 816, 887, 978, 1102, 1282, 1573},
	},
	{
		Name: "R134A",
		T:    []float64{-40, -30, -20, -10, 0, 10, 20, 30, 40, 50, 60, 70},
		P: []float64{
			0.512e5, 0.844e5, 1.327e5, 2.006e5, 2.928e5, 4.146e5,
			5.717e5, 7.702e5, 10.166e5, 13.179e5, 16.818e5, 21.168e5,
		},
		RhoF: []float64{1418, 1388, 1358, 1327, 1295, 1261, 1225, 1187, 1147, 1102, 1053, 996},
		RhoG: []float64{2.77, 4.43, 6.79, 10.04, 14.43, 20.23, 27.78, 37.54, 50.09, 66.27, 87.38, 115.6},
		HF: []float64{
			148.4e3, 160.8e3, 173.6e3, 186.7e3, 200.0e3, 213.6e3,
			227.5e3, 241.7e3, 256.4e3, 271.6e3, 287.5e3, 304.3e3,
		},
		HG: []float64{
			374.3e3, 380.3e3, 386.5e3, 392.7e3, 398.6e3, 404.3e3,
			409.8e3, 414.8e3, 419.4e3, 423.4e3, 426.6e3, 428.7e3,
		},
		CpF: []float64{1255, 1273, 1293, 1316, 1341, 1370, 1405, 1446, 1498, 1566, 1660, 1804},
		CpG: []float64{749, 781, 816, 854, 897, 946, 1001, 1065, 1145, 1246, 1387, 1600},
	},
	{
		// near-azeotropic blend of R32 and R125 (50/50 by mass); the glide is
		// below 0.2 K and treated as pseudo-pure
		Name: "R410A",
		T:    []float64{-40, -30, -20, -10, 0, 10, 20, 30, 40, 50, 55},
		P: []float64{
			1.753e5, 2.696e5, 3.996e5, 5.729e5, 7.981e5,
			10.846e5, 14.426e5, 18.833e5, 24.189e5, 30.636e5, 34.290e5,
		},
		RhoF: []float64{1350, 1318, 1285, 1249, 1211, 1170, 1124, 1072, 1011, 932, 881},
		RhoG: []float64{7.00, 10.57, 15.46, 22.03, 30.73, 42.20, 57.30, 77.40, 104.8, 144.6, 173.0},
		HF: []float64{
			137.8e3, 152.9e3, 168.3e3, 184.0e3, 200.0e3,
			216.5e3, 233.7e3, 251.8e3, 271.3e3, 293.2e3, 306.2e3,
		},
		HG: []float64{
			408.8e3, 415.8e3, 422.2e3, 427.9e3, 432.7e3,
			436.4e3, 438.8e3, 439.3e3, 436.9e3, 429.0e3, 421.4e3,
		},
		CpF: []float64{1400, 1420, 1450, 1490, 1540, 1610, 1700, 1840, 2070, 2550, 3050},
		CpG: []float64{810, 870, 940, 1020, 1120, 1260, 1440, 1710, 2150, 3050, 3900},
	},
	{
		// zeotropic blend of R32 and R1234yf (68.9/31.1 by mass), glide of
		// roughly 1.5 K; tabulated at the mean of bubble and dew temperature
		Name:  "R454B",
		Glide: true,
		T:     []float64{-40, -30, -20, -10, 0, 10, 20, 30, 40, 50, 60},
		P: []float64{
			1.487e5, 2.312e5, 3.449e5, 4.977e5, 6.977e5,
			9.538e5, 12.754e5, 16.725e5, 21.559e5, 27.373e5, 34.301e5,
		},
		RhoF: []float64{1270, 1242, 1212, 1180, 1146, 1110, 1070, 1025, 974, 913, 832},
		RhoG: []float64{4.81, 7.29, 10.69, 15.28, 21.38, 29.42, 39.94, 53.73, 72.02, 97.1, 134.0},
		HF: []float64{
			139.6e3, 154.4e3, 169.4e3, 184.6e3, 200.0e3,
			215.9e3, 232.3e3, 249.4e3, 267.4e3, 286.7e3, 308.1e3,
		},
		HG: []float64{
			441.9e3, 448.0e3, 453.6e3, 458.4e3, 462.2e3,
			465.1e3, 466.7e3, 466.6e3, 464.1e3, 457.9e3, 444.9e3,
		},
		CpF: []float64{1520, 1550, 1580, 1620, 1670, 1740, 1830, 1950, 2130, 2440, 3100},
		CpG: []float64{950, 1000, 1060, 1130, 1220, 1330, 1480, 1680, 1980, 2500, 3600},
	},
}

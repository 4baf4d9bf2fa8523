package calibration

// Temperature limits in MK shared by the response and radiative-loss curves.
// The lower limit is exclusive.
const (
	MinTemperatureMK = 0.0
	MaxTemperatureMK = 100.0
)

// Flux-ratio domain of the temperature curves (short/long, after scaling).
const (
	minRatio = 1e-4
	maxRatio = 1.0
)

// Scale factors applied to operational fluxes before the curves are used.
const (
	swpcLongScale  = 1 / 0.7
	swpcShortScale = 1 / 0.85

	// GOES 6 long channel before the 1983-06-28 gain change.
	goes6EarlyLongScale = 4.43 / 5.32
)

func ratioCurve(c0, c1, c2 float64) Curve {
	return Curve{Coeffs: [3]float64{c0, c1, c2}, Min: minRatio, Max: maxRatio}
}

// responseCurve gives the long-channel flux (W m^-2) produced by an emission
// measure of 1e55 cm^-3 at temperature T (MK).
func responseCurve(d0, d1, d2 float64) Curve {
	return Curve{Coeffs: [3]float64{d0, d1, d2}, Min: MinTemperatureMK, Max: MaxTemperatureMK}
}

var (
	goes8Coronal = CurveSet{
		Name:        "goes8+/coronal",
		LongScale:   swpcLongScale,
		ShortScale:  swpcShortScale,
		Temperature: ratioCurve(1.5691259, 0.520, 0.040),
		Response:    responseCurve(-0.9619348, 2.80, -0.60),
	}
	goes8Photospheric = CurveSet{
		Name:        "goes8+/photospheric",
		LongScale:   swpcLongScale,
		ShortScale:  swpcShortScale,
		Temperature: ratioCurve(1.5103453, 0.500, 0.036),
		Response:    responseCurve(-1.3543364, 2.95, -0.66),
	}

	goes1Coronal = CurveSet{
		Name:        "goes1-7/coronal",
		LongScale:   1,
		ShortScale:  1,
		Temperature: ratioCurve(1.5338562, 0.515, 0.039),
		Response:    responseCurve(-1.0203933, 2.78, -0.59),
	}
	goes1Photospheric = CurveSet{
		Name:        "goes1-7/photospheric",
		LongScale:   1,
		ShortScale:  1,
		Temperature: ratioCurve(1.4806593, 0.498, 0.035),
		Response:    responseCurve(-1.4082133, 2.93, -0.65),
	}

	goes6EarlyCoronal = CurveSet{
		Name:        "goes6-early/coronal",
		LongScale:   goes6EarlyLongScale,
		ShortScale:  1,
		Temperature: ratioCurve(1.5307370, 0.515, 0.039),
		Response:    responseCurve(-1.0580753, 2.78, -0.59),
	}
	goes6EarlyPhotospheric = CurveSet{
		Name:        "goes6-early/photospheric",
		LongScale:   goes6EarlyLongScale,
		ShortScale:  1,
		Temperature: ratioCurve(1.4869855, 0.498, 0.035),
		Response:    responseCurve(-1.4354679, 2.93, -0.65),
	}

	goes6LateCoronal = CurveSet{
		Name:        "goes6-late/coronal",
		LongScale:   1,
		ShortScale:  1,
		Temperature: ratioCurve(1.5304215, 0.515, 0.039),
		Response:    responseCurve(-1.0403566, 2.78, -0.59),
	}
	goes6LatePhotospheric = CurveSet{
		Name:        "goes6-late/photospheric",
		LongScale:   1,
		ShortScale:  1,
		Temperature: ratioCurve(1.4781501, 0.498, 0.035),
		Response:    responseCurve(-1.4318817, 2.93, -0.65),
	}
)

// RadiativeLoss maps temperature (MK) to the optically thin radiative loss
// coefficient in erg cm^3 s^-1, coronal abundances.
var RadiativeLoss = Curve{
	Coeffs: [3]float64{-21.5277424, -0.80, 0.22},
	Min:    MinTemperatureMK,
	Max:    MaxTemperatureMK,
}

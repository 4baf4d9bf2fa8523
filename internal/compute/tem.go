package compute

import (
	"fmt"
	"math"

	"github.com/solarflux/goesxrs/internal/calibration"
	"github.com/solarflux/goesxrs/internal/units"
	"github.com/solarflux/goesxrs/pkg/types"
)

// emScale is the emission measure the response curves are normalised to.
const emScale = 1e55

// InvertTemperature converts long (1-8 Å) and short (0.5-4 Å) channel
// fluxes into plasma temperature in MK.
func InvertTemperature(long, short units.Quantity, key calibration.Key) (units.Quantity, error) {
	if err := sameLength("long and short flux", long.Len(), short.Len()); err != nil {
		return units.Quantity{}, err
	}
	set, err := calibration.Lookup(key)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("compute: %w", err)
	}
	lf, sf, err := fluxes(long, short)
	if err != nil {
		return units.Quantity{}, err
	}
	temp, err := temperatures(lf, sf, set)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.Quantity{Values: temp, Unit: units.MegaKelvin}, nil
}

// DeriveEM converts long-channel flux at the given temperatures into
// emission measure in cm^-3.
func DeriveEM(long, temperature units.Quantity, key calibration.Key) (units.Quantity, error) {
	if err := sameLength("long flux and temperature", long.Len(), temperature.Len()); err != nil {
		return units.Quantity{}, err
	}
	set, err := calibration.Lookup(key)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("compute: %w", err)
	}
	lf, err := convert(long, units.WattPerSquareMeter, "long flux")
	if err != nil {
		return units.Quantity{}, err
	}
	temp, err := convert(temperature, units.MegaKelvin, "temperature")
	if err != nil {
		return units.Quantity{}, err
	}
	em, err := emissionMeasures(lf, temp, set)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.Quantity{Values: em, Unit: units.PerCubicCentimeter}, nil
}

// TemperatureEM runs InvertTemperature and DeriveEM with a single lookup.
func TemperatureEM(long, short units.Quantity, key calibration.Key) (temp, em units.Quantity, err error) {
	if err := sameLength("long and short flux", long.Len(), short.Len()); err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	set, err := calibration.Lookup(key)
	if err != nil {
		return units.Quantity{}, units.Quantity{}, fmt.Errorf("compute: %w", err)
	}
	lf, sf, err := fluxes(long, short)
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	t, err := temperatures(lf, sf, set)
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	e, err := emissionMeasures(lf, t, set)
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	return units.Quantity{Values: t, Unit: units.MegaKelvin},
		units.Quantity{Values: e, Unit: units.PerCubicCentimeter}, nil
}

func temperatures(long, short []float64, set calibration.CurveSet) ([]float64, error) {
	out := make([]float64, len(long))
	for i := range long {
		ratio := (short[i] * set.ShortScale) / (long[i] * set.LongScale)
		t, err := set.Temperature.Eval(ratio)
		if err != nil {
			return nil, fmt.Errorf("compute: flux ratio at sample %d: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}

func emissionMeasures(long, temp []float64, set calibration.CurveSet) ([]float64, error) {
	out := make([]float64, len(long))
	for i := range long {
		if err := checkTemperature(i, temp[i]); err != nil {
			return nil, err
		}
		if !(long[i] >= 0) || math.IsInf(long[i], 0) {
			return nil, fmt.Errorf("compute: long flux %g at sample %d: %w", long[i], i, types.ErrDomain)
		}
		resp, err := set.Response.Eval(temp[i])
		if err != nil {
			return nil, fmt.Errorf("compute: response at sample %d: %w", i, err)
		}
		out[i] = emScale * long[i] * set.LongScale / resp
	}
	return out, nil
}

// checkTemperature enforces 0 < T <= 100 MK.
func checkTemperature(i int, t float64) error {
	if !(t > calibration.MinTemperatureMK && t <= calibration.MaxTemperatureMK) {
		return fmt.Errorf("compute: temperature %g MK at sample %d outside (%g, %g]: %w",
			t, i, calibration.MinTemperatureMK, calibration.MaxTemperatureMK, types.ErrDomain)
	}
	return nil
}

func fluxes(long, short units.Quantity) (lf, sf []float64, err error) {
	if lf, err = convert(long, units.WattPerSquareMeter, "long flux"); err != nil {
		return nil, nil, err
	}
	if sf, err = convert(short, units.WattPerSquareMeter, "short flux"); err != nil {
		return nil, nil, err
	}
	return lf, sf, nil
}

func convert(q units.Quantity, u units.Unit, what string) ([]float64, error) {
	v, err := q.In(u)
	if err != nil {
		return nil, fmt.Errorf("compute: %s: %w", what, err)
	}
	return v, nil
}

func sameLength(what string, a, b int) error {
	if a != b {
		return fmt.Errorf("compute: %s differ in length (%d vs %d): %w", what, a, b, types.ErrLengthMismatch)
	}
	return nil
}

package calibration

import (
	"fmt"
	"time"

	"github.com/solarflux/goesxrs/pkg/types"
)

const (
	// Satellites numbered above this use the GOES 8+ curves.
	modernThreshold types.Satellite = 7

	// legacySatellite changed long-channel gain on GainChangeDate.
	legacySatellite types.Satellite = 6
)

// GainChangeDate is when the GOES 6 long-channel calibration changed.
var GainChangeDate = time.Date(1983, time.June, 28, 0, 0, 0, 0, time.UTC)

// Key identifies the calibration to use. Date only matters for GOES 6; a
// zero Date selects the calibration in force after GainChangeDate.
type Key struct {
	Satellite types.Satellite
	Abundance types.Abundance
	Date      time.Time
}

// Validate reports ErrConfig for an invalid satellite or abundance.
func (k Key) Validate() error {
	if err := k.Satellite.Validate(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	if err := k.Abundance.Validate(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	return nil
}

// CurveSet is the complete calibration for one Key.
type CurveSet struct {
	Name string

	// LongScale and ShortScale multiply the operational long (1-8 Å) and
	// short (0.5-4 Å) channel fluxes before the curves are applied.
	LongScale  float64
	ShortScale float64

	// Temperature maps scaled short/long flux ratio to temperature in MK.
	Temperature Curve

	// Response maps temperature in MK to scaled long-channel flux in W m^-2
	// per 1e55 cm^-3 of emission measure.
	Response Curve
}

// Lookup returns the CurveSet for k.
func Lookup(k Key) (CurveSet, error) {
	if err := k.Validate(); err != nil {
		return CurveSet{}, err
	}
	coronal := k.Abundance == types.Coronal

	switch {
	case k.Satellite > modernThreshold:
		if coronal {
			return goes8Coronal, nil
		}
		return goes8Photospheric, nil

	case k.Satellite == legacySatellite:
		early := !k.Date.IsZero() && k.Date.Before(GainChangeDate)
		switch {
		case early && coronal:
			return goes6EarlyCoronal, nil
		case early:
			return goes6EarlyPhotospheric, nil
		case coronal:
			return goes6LateCoronal, nil
		default:
			return goes6LatePhotospheric, nil
		}

	default:
		if coronal {
			return goes1Coronal, nil
		}
		return goes1Photospheric, nil
	}
}

package compute

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/solarflux/goesxrs/internal/ephemeris"
	"github.com/solarflux/goesxrs/internal/units"
)

// Result keys for X-ray luminosity.
const (
	KeyLongLum       = "longlum"
	KeyShortLum      = "shortlum"
	KeyLongLumInt    = "longlum_int"
	KeyShortLumInt   = "shortlum_int"
	KeyLongLumCumul  = "longlum_cumul"
	KeyShortLumCumul = "shortlum_cumul"
)

// Luminosity holds the long- and short-channel X-ray luminosity in erg/s
// and, with sample times, the radiated energy in erg.
type Luminosity struct {
	Long  Series
	Short Series
}

// Fields returns the result keyed by longlum, shortlum, their _int and
// _cumul variants, and dt. Only keys for computed values are present.
func (l Luminosity) Fields() map[string]any {
	out := make(map[string]any, 7)
	l.Long.fields(out, KeyLongLum, KeyLongLumInt, KeyLongLumCumul)
	l.Short.fields(out, KeyShortLum, KeyShortLumInt, KeyShortLumCumul)
	return out
}

// GoesLX converts channel fluxes into luminosity, assuming isotropic
// emission from the Sun at the Sun-Earth distance on date. A zero date uses
// one AU. Fluxes without a unit are taken to be in W/m**2.
func GoesLX(long, short units.Quantity, times []time.Time, date time.Time, cumulative bool) (Luminosity, error) {
	if err := checkCumulative(times, cumulative); err != nil {
		return Luminosity{}, err
	}
	if err := sameLength("long and short flux", long.Len(), short.Len()); err != nil {
		return Luminosity{}, err
	}
	lf, err := convert(long.Assume(units.WattPerSquareMeter), units.ErgPerSecondPerSquareCm, "long flux")
	if err != nil {
		return Luminosity{}, err
	}
	sf, err := convert(short.Assume(units.WattPerSquareMeter), units.ErgPerSecondPerSquareCm, "short flux")
	if err != nil {
		return Luminosity{}, err
	}

	d := ephemeris.Distance(date)
	area := 4 * math.Pi * d * d
	floats.Scale(area, lf)
	floats.Scale(area, sf)

	ls, err := Integrate(lf, times, cumulative)
	if err != nil {
		return Luminosity{}, err
	}
	ss, err := Integrate(sf, times, cumulative)
	if err != nil {
		return Luminosity{}, err
	}
	return Luminosity{Long: ls, Short: ss}, nil
}

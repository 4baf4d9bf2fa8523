package ephemeris

import (
	"math"
	"time"
)

// AstronomicalUnit in centimetres.
const AstronomicalUnit = 1.495978707e13

const (
	// Julian day of the Unix epoch.
	unixEpochJD = 2440587.5

	// 1900 January 0.5 ET, the epoch of the orbital elements below.
	epoch1900JD = 2415020.0

	daysPerCentury = 36525.0
)

// JulianDay returns the Julian day number (with fraction) for t.
func JulianDay(t time.Time) float64 {
	return unixEpochJD + float64(t.UTC().UnixNano())/float64(24*time.Hour)
}

// SunEarthDistance returns the distance between Sun and Earth at t in AU.
func SunEarthDistance(t time.Time) float64 {
	T := (JulianDay(t) - epoch1900JD) / daysPerCentury

	mean := math.Mod(358.47583+35999.04975*T-0.000150*T*T-0.0000033*T*T*T, 360)
	m := radians(mean)

	centre := (1.919460-0.004789*T-0.000014*T*T)*math.Sin(m) +
		(0.020094-0.000100*T)*math.Sin(2*m) +
		0.000293*math.Sin(3*m)
	nu := radians(mean + centre)

	e := 0.016751040 - 0.00004180*T - 0.000000126*T*T
	return 1.0000001124 * (1 - e*e) / (1 + e*math.Cos(nu))
}

// Distance returns the Sun-Earth distance in centimetres for the observation
// date t, or exactly one AU when t is zero. The orbit is evaluated at the
// ephemeris day preceding t, the convention GOES luminosity tables use.
func Distance(t time.Time) float64 {
	if t.IsZero() {
		return AstronomicalUnit
	}
	return SunEarthDistance(EphemerisDay(t)) * AstronomicalUnit
}

// EphemerisDay returns the instant the orbit is evaluated at for an
// observation date t: one day earlier.
func EphemerisDay(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Package compute derives physical quantities from GOES XRS fluxes.
//
// tem.go inverts the short/long flux ratio into plasma temperature and
// derives emission measure from the long-channel flux, using the curve set
// calibration.Lookup selects for the satellite, abundances and date.
//
// radloss.go and luminosity.go turn temperature/EM and fluxes into radiative
// loss rate and X-ray luminosity. Both feed integrate.go, which integrates a
// rate over irregular sample times with the midpoint convention and
// optionally returns the running total.
//
// engine.go is the lightcurve-facing entry point. An Input is either raw
// arrays or a lightcurve; the Engine resolves it once and runs the pure
// functions above. Nothing here keeps state between calls.
//
// Every failure wraps one of the sentinels in pkg/types. On error no partial
// result is returned.
package compute

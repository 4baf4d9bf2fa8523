// Package calibration holds the compiled-in XRS response curves and selects
// the set that applies to a satellite, abundance regime and date.
//
// A CurveSet bundles the flux-ratio -> temperature curve, the
// temperature -> long-channel response curve, and the scale factors applied
// to the operational fluxes before either curve is used:
//
//   - GOES 8 and later: operational fluxes carry the NOAA/SWPC scaling, which
//     is removed (long / 0.7, short / 0.85).
//   - GOES 1-7 except 6: fluxes are used as distributed.
//   - GOES 6: the long-channel gain changed on 1983-06-28. Earlier data is
//     rescaled by 4.43/5.32 and uses its own curves.
//
// Curves are polynomials in log10 space over a bounded linear domain. They
// are package-level values and are never mutated, so lookups need no locking.
//
// Accuracy: each set is a quadratic fitted through one reference point (a
// 7e-6 / 7e-7 W/m**2 long/short flux pair) with fixed slopes. It is not the
// tabulated CHIANTI response. Temperatures and emission measures are exact
// at the reference flux ratio and only indicative elsewhere; treat values
// far from it as rough estimates. The radiative loss curve is likewise
// anchored at 11 MK.
package calibration

// Package ephemeris computes the Sun-Earth distance used to turn flux at
// the spacecraft into luminosity at the Sun.
//
// The distance follows the low-precision solar theory (mean anomaly plus
// equation of centre on an eccentric orbit), accurate to roughly 1e-5 AU,
// far below the uncertainty of the XRS calibration.
package ephemeris

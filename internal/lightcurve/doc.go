// Package lightcurve is the time-indexed table that carries XRS data through
// goesxrs: a sample time axis, named float columns of equal length, and a
// string metadata map.
//
// Column names follow the GOES conventions used throughout the tool:
// xrsa (0.5-4 Å, W m^-2), xrsb (1-8 Å, W m^-2), temperature (MK),
// em (cm^-3), rad_loss_rate (erg s^-1), luminosity_xrsa and
// luminosity_xrsb (erg s^-1). The TELESCOP metadata key names the
// spacecraft, e.g. "GOES 15".
//
// A Lightcurve is not safe for concurrent mutation. Operations that derive
// new columns work on a Clone.
package lightcurve

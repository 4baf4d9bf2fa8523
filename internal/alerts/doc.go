// Package alerts evaluates threshold rules over derived lightcurves.
//
// A rule condition is "field operator value". field is any lightcurve column
// (temperature, em, xrsa, xrsb, rad_loss_rate, luminosity_xrsa,
// luminosity_xrsb) or "class", which compares the xrsb flux against a GOES
// class such as M1. Operators are >, >=, <, <= and ==.
//
// A rule fires once per lightcurve when any sample satisfies it. The Alert
// records the first matching sample and the most extreme one.
package alerts

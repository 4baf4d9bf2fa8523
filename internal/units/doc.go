// Package units carries arrays of measured values together with their unit
// and converts them into the canonical units the calculations work in:
// W m^-2 for flux, MK for temperature, cm^-3 for emission measure, erg s^-1
// for power and seconds for time.
//
// A Quantity built with the Dimensionless unit is a plain array. Converting
// it to any unit returns the values unchanged, so callers can pass bare
// numbers that are already in the expected unit.
//
// Scalars are lifted to one-element quantities with Scalar at the API
// boundary; nothing downstream special-cases single values.
package units

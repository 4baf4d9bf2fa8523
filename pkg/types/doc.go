// Package types defines the small set of shared types used across goesxrs:
// the satellite number, the elemental abundance regime, and the error
// categories every calculation reports through.
//
// Callers classify failures with errors.Is against the sentinels in
// errors.go. A single error may carry more than one category; a timestamp
// sequence of the wrong length given to the integration helper is both a
// malformed call and a length mismatch.
package types

// Package runner drives one analysis pass over every configured source:
// load the lightcurve, derive temperature, emission measure, radiative loss
// and luminosity, evaluate alert rules, and summarise into reports.
//
// Sources are independent, so Run processes them concurrently, bounded by
// analysis.workers. A source that fails is logged and reported in
// Outcome.Failures; the rest still complete.
package runner

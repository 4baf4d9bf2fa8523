// Package loader reads XRS lightcurves from disk.
//
// New(config.Source) returns the Loader for the source's format:
//
//   - csv: a header row naming at least time, xrsa and xrsb, one sample per
//     row. Leading "# KEY: value" lines become metadata, so a file can carry
//     "# TELESCOP: GOES 15". Times are RFC 3339.
//   - parquet: rows of (time, xrsa, xrsb, telescope) written with
//     TIMESTAMP_MILLIS times. The telescope of the first row becomes TELESCOP.
//
// Optional temperature and em columns are loaded when present. A Telescope
// set on the source overrides whatever the file says.
package loader

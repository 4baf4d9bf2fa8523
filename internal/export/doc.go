// Package export turns analysis results into reports and writes them out.
//
// Summarize condenses a compute.Result into a Report: peaks of flux,
// temperature and emission measure, the integrated radiated and X-ray
// energies, and any fired alerts. Reports are written as
//
//   - json: an indented array of reports including the per-sample series
//   - prom: Prometheus text exposition, one gauge family per summary value
//     labelled by source and telescope
//   - parquet: one <source_id>.parquet file per report with per-sample rows,
//     written into the output directory
package export

// Package config loads and watches the goesxrs configuration file.
//
// Top-level types:
//   - Config{Logging, Analysis, Sources, Events, Output, Alerts}, the full
//     tree parsed from YAML
//   - LoggingConfig: level, format (json|text), output (stdout|stderr|file)
//     and the rotating file sink settings
//   - AnalysisConfig: abundance, cumulative, workers
//   - Source: id, format (csv|parquet), path, telescope
//   - OutputConfig: format (json|prom|parquet), path ("-" for stdout)
//   - AlertRule: name, condition, severity
//
// Load(path) reads the YAML file, applies defaults, then validates required
// fields and enums. Every validation failure matches types.ErrConfig.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config. A reload that fails validation is
// logged and skipped.
package config

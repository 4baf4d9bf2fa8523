// Package logging builds the process-wide slog logger from LoggingConfig.
// File output goes through lumberjack so long-running watch sessions rotate
// their logs.
package logging

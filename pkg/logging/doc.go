// Package logging provides structured logging utilities for chartgen.
//
// It wraps the standard library slog package with chartgen defaults: JSON
// output to stderr (stdout is reserved for the generated manifest), module and
// version context on every record, and environment-based level configuration.
//
// Setting the default logger (recommended):
//
//	logging.SetDefaultStructuredLogger("chartgen", version)
//	slog.Info("generating manifest", "chart", chartRef)
//
// The LOG_LEVEL environment variable controls verbosity (debug, info, warn,
// error, case-insensitive); unset defaults to INFO. Debug level includes source
// location in each record.
package logging

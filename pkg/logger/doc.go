// Package logger builds configured log/slog loggers via functional options.
// Defaults suit a CLI: human-readable text on stderr at INFO level, so
// generated output on stdout stays machine-consumable. JSON format is
// available for environments that aggregate logs.
package logger

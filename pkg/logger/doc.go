// Package logger provides a structured logging interface for the checkpoints plugin.
//
// It wraps the zerolog library and supports:
// - Multiple log levels (Debug, Info, Warn, Error)
// - Structured logging with fields
// - Pretty console output with colors on stderr
// - Optional JSON file output alongside the console
// - Global logger instance for easy access
//
// Basic Usage:
//
//	err := logger.Initialize(&cfg.Logging)
//
//	logger.Info("Plugin enabled")
//	logger.WithField("world", "overworld").Info("Checkpoint added")
//	logger.WithError(err).Warn("Failed to save checkpoints")
//
// Tests can use NewNopLogger to discard output or NewTestLogger to capture
// messages and assert on them.
package logger

// Package logger provides a structured logging facility based on Zap.
//
// Both tools print their human-readable checklist to standard output through
// core/output. The logger carries the diagnostic side channel: run start and
// end, per-item copy failures, the locator's selection fallback and report
// upload errors.
//
// # Run Awareness
//
// WithRunID attaches the id of the current verification or extraction run so
// that log lines can be correlated with the JSON report written for that run.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, runID)
//	log.Warn("Copy failed", zap.String("item", "common"), zap.Error(err))
package logger

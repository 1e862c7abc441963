// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the structured logger shared by the urljudge
// harness, server and CLI. It is a thin layer over log/slog.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("judging", "url", raw)
//	logutil.Info("comparison finished", "total", n, "mismatches", m)
//	logutil.Error("config load failed", "error", err)
//
// Component loggers carry fixed context:
//
//	log := logutil.NewLogger("compare").WithSubject("neturl")
//	log.Info("mismatch", "url", raw)
//
// # Debug Mode
//
// Debug logging is enabled by SetupLogger(true, ...) or by setting
// URLJUDGE_DEBUG=true in the environment.
//
// # Structured Logging
//
// SetupLogger(debug, true) writes JSON lines:
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"comparison finished","total":1000}
//
// otherwise the slog text format is used:
//
//	time=2026-01-15T10:30:00Z level=INFO msg="comparison finished" total=1000
package logutil

// Copyright 2026 The Seqwire Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "log/slog"

// traceLogger, when set, receives debug-level records describing
// container decodes. Purely observational: tracing never changes
// decode behavior.
var traceLogger *slog.Logger

// SetTraceLogger installs a logger for decode tracing, or removes it
// when logger is nil. Set it once at startup; it is not synchronized
// against in-flight decode operations.
func SetTraceLogger(logger *slog.Logger) {
	traceLogger = logger
}

func trace(message string, args ...any) {
	if traceLogger != nil {
		traceLogger.Debug(message, args...)
	}
}

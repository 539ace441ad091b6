// Package log provides the structured diagnostics the dictionary load
// phase emits, wrapping go.uber.org/zap the way
// theRebelliousNerd-codenerd's cmd/nerd/main.go builds its CLI logger:
// a production config, with debug level gated behind a verbose flag.
package log

import "go.uber.org/zap"

// Logger wraps a *zap.Logger. The core itself never logs (script,
// dictionary and usl are pure and return errors); this exists for the
// longer-lived collaborator that drives a dictionary load and wants to
// know what happened, mirroring the source's ad hoc print diagnostics
// in Dictionary.add_term.
type Logger struct {
	z *zap.Logger
}

// New builds a production logger, switching to debug level when verbose
// is set.
func New(verbose bool) (*Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	z, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

// Info logs an informational event with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.z.Info(msg, fields...)
}

// Warn logs a recoverable but noteworthy event.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, fields...)
}

// Debug logs a verbose diagnostic, only emitted when New was given
// verbose=true.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug(msg, fields...)
}

package document

import "log/slog"

// Logger is the interface ptrtools uses for structured logging.
//
// The interface is minimal yet compatible with popular logging libraries
// including log/slog, zap, and zerolog. Implementations should treat
// attrs as alternating key-value pairs, following the log/slog
// convention:
//
//	logger.Debug("loaded document", "path", "config.yaml", "size", 1912)
//
// Use [NewSlogAdapter] to wrap a standard library *slog.Logger. For other
// libraries, a small adapter implementing the five methods suffices, e.g.
// for zap's SugaredLogger:
//
//	func (z zapAdapter) Debug(msg string, attrs ...any) { z.sugar.Debugw(msg, attrs...) }
//
// with Info, Warn, and Error delegating the same way, and With wrapping
// z.sugar.With(attrs...) in a fresh adapter.
type Logger interface {
	// Debug logs load-path diagnostics: format detection, fetch sizes.
	Debug(msg string, attrs ...any)

	// Info logs completed operations.
	Info(msg string, attrs ...any)

	// Warn logs recoverable oddities, like an unrecognized extension.
	Warn(msg string, attrs ...any)

	// Error logs failures that abort a load.
	Error(msg string, attrs ...any)

	// With returns a Logger that prepends attrs to every entry.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the default when no logger is
// configured, so load paths can log unconditionally.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}

func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter bridges a *slog.Logger into the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, falling back to slog.Default() when nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

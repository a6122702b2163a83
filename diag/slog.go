package diag

import "log/slog"

// SlogSink is a Sink that forwards Diagnostics to a *slog.Logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink returns a Sink that logs each Diagnostic through logger at a
// level derived from its Severity. A nil logger falls back to slog.Default.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Observe(d Diagnostic) {
	attrs := []any{
		slog.Uint64("page", uint64(d.PageNumber)),
		slog.String("category", d.Category.String()),
	}
	switch d.Severity {
	case SevError:
		s.logger.Error(d.Message, attrs...)
	case SevWarning:
		s.logger.Warn(d.Message, attrs...)
	default:
		s.logger.Info(d.Message, attrs...)
	}
}

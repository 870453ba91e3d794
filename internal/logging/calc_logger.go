package logging

import (
	"context"
	"fmt"
	"log/slog"
)

// CalcLogger adapts a *slog.Logger to the printf style Logger used by the
// calculation engine.
type CalcLogger struct {
	logger *slog.Logger
}

// NewCalcLogger wraps logger; a nil logger falls back to slog.Default().
func NewCalcLogger(logger *slog.Logger) *CalcLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &CalcLogger{logger: logger.With(slog.String("component", "calculation"))}
}

func (l *CalcLogger) Debugf(format string, args ...any) { l.log(slog.LevelDebug, format, args) }
func (l *CalcLogger) Infof(format string, args ...any)  { l.log(slog.LevelInfo, format, args) }
func (l *CalcLogger) Warnf(format string, args ...any)  { l.log(slog.LevelWarn, format, args) }
func (l *CalcLogger) Errorf(format string, args ...any) { l.log(slog.LevelError, format, args) }

func (l *CalcLogger) log(level slog.Level, format string, args []any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, fmt.Sprintf(format, args...))
}

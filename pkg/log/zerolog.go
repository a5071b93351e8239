// Package log provides the default zerolog-backed Logger implementation.
//
// This file contains the zerolog adapter behind the package-level GetLogger
// and GetLoggerWithName functions. The adapter keeps the library quiet at
// warn level by default; applications raise the level with SetLogLevel or
// replace the provider entirely with SetLoggerProvider.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	lassogoErrors "github.com/YuminosukeSato/lassogo/pkg/errors"
)

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = NewZerologProvider(LevelWarn, os.Stderr)
)

func init() {
	// Route errors.Warn output through the configured provider so warnings
	// such as ConvergenceWarning appear as structured records.
	lassogoErrors.SetZerologWarnFunc(func(warning error) {
		GetLogger().Warn(warning.Error(), "warning", warning)
	})
}

// GetLogger returns the default logger instance.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with a component name,
// e.g. "linear.lasso" or "preprocessing.scaler".
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// SetLoggerProvider replaces the default provider. Pass a TestLoggerProvider
// in tests to capture log output.
func SetLoggerProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// SetLogLevel sets the minimum level on the default provider.
func SetLogLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	defaultProvider.SetLevel(level)
}

// ZerologProvider is a LoggerProvider backed by rs/zerolog.
type ZerologProvider struct {
	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewZerologProvider creates a provider writing JSON records to w at the
// given minimum level.
func NewZerologProvider(level Level, w io.Writer) *ZerologProvider {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologProvider{logger: zl}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{zl: p.logger}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	zl := p.logger.With().Str("component", name).Logger()
	return &zerologLogger{zl: zl}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger = p.logger.Level(toZerologLevel(level))
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	l.emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	l.emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	l.emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	// An error passed as the first field is attached as the canonical
	// error attribute with its stack trace preserved.
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			l.emit(l.zl.Error().Err(err), msg, fields[1:])
			return
		}
	}
	l.emit(l.zl.Error(), msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	current := l.zl.GetLevel()
	if current == zerolog.Disabled {
		return false
	}
	return toZerologLevel(level) >= current
}

func (l *zerologLogger) emit(evt *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		switch v := fields[i+1].(type) {
		case zerolog.LogObjectMarshaler:
			evt = evt.Object(key, v)
		case error:
			evt = evt.AnErr(key, v)
		case string:
			evt = evt.Str(key, v)
		case int:
			evt = evt.Int(key, v)
		case int64:
			evt = evt.Int64(key, v)
		case float64:
			evt = evt.Float64(key, v)
		case bool:
			evt = evt.Bool(key, v)
		default:
			evt = evt.Interface(key, v)
		}
	}
	evt.Msg(msg)
}

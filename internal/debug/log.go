package debug

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sufield/prdash/internal/logging"
)

// Logger interface for debug logging.
//
// Example usage:
//
//	logger := debug.GetLogger()
//	logger.Debugf("query %q page %d", query, page)
//	logger.Debug("state cookie verified")
type Logger interface {
	// Debugf logs a formatted debug message
	Debugf(format string, args ...any)
	// Debug logs debug arguments
	Debug(args ...any)
}

// nopLogger does nothing (used when debug mode is disabled).
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Debug(...any)          {}

// slogLogger writes through logging.Logger at debug level.
// logging.Logger is read on every call so a later Initialize takes effect.
type slogLogger struct{}

func (slogLogger) Debugf(format string, args ...any) {
	logging.Logger.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, args...), "component", "debug")
}

func (slogLogger) Debug(args ...any) {
	logging.Logger.Log(context.Background(), slog.LevelDebug, fmt.Sprint(args...), "component", "debug")
}

var (
	// l is the private global debug logger (use GetLogger() to access)
	l    Logger = nopLogger{}
	once sync.Once
)

// GetLogger returns the configured debug logger.
// Always use this function to access the logger instead of storing a reference.
func GetLogger() Logger {
	return l
}

// InitLogger initializes the debug logger based on debug mode.
// Call this after debug.Init() to ensure Active.Enabled is set.
func InitLogger() {
	once.Do(func() {
		if Active.Enabled {
			l = slogLogger{}
			l.Debug("debug logging enabled")
		}
	})
}

package logger

import (
	"fmt"
	"testing"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

// TestLogger implements types.Logger using testing.T for output.
// This ensures log messages appear in test output, interleaved with the
// test's own logging.
type TestLogger struct {
	t *testing.T
}

// Compile-time assertion that TestLogger implements Logger.
var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger that writes through t.Logf.
//
// Parameters:
//   - t: Test to attach log output to
//
// Returns:
//   - *TestLogger: Logger writing to the test log
func NewTest(t *testing.T) *TestLogger {
	return &TestLogger{t: t}
}

// Debug logs a debug-level message to the test output.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.logf("DEBUG", msg, keysAndValues...)
}

// Info logs an info-level message to the test output.
func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.logf("INFO", msg, keysAndValues...)
}

// Warn logs a warn-level message to the test output.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.logf("WARN", msg, keysAndValues...)
}

// Error logs an error-level message to the test output.
func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.logf("ERROR", msg, keysAndValues...)
}

// Fatal logs a fatal-level message to the test output without exiting.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.logf("FATAL", msg, keysAndValues...)
}

func (l *TestLogger) logf(level, msg string, keysAndValues ...any) {
	l.t.Helper()
	if len(keysAndValues) == 0 {
		l.t.Logf("[%s] %s", level, msg)
		return
	}
	l.t.Logf("[%s] %s %s", level, msg, fmt.Sprint(keysAndValues...))
}

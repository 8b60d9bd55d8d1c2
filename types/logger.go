package types

// Logger defines methods for structured logging.
//
// Compatible with slog-style structured loggers; all methods accept
// alternating key-value pairs for structured fields. The pure algorithm
// packages (planner, assigner) never log; logging is confined to the
// Aligner and the batch orchestrator.
type Logger interface {
	// Debug logs a message at DebugLevel with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at the highest severity and terminates the
	// process. Test and no-op implementations do not exit.
	Fatal(msg string, keysAndValues ...any)
}

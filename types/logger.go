package types

// Logger defines methods for structured logging.
//
// Compatible with zap.SugaredLogger and other structured loggers. All
// methods accept key-value pairs for structured fields. The configuration
// builder logs through this interface (soft failures such as an unknown
// broadcast protocol are warnings, never errors), and worker groups use it
// to report recovered subscriber panics.
type Logger interface {
	// Debug logs a message at DebugLevel. The builder emits a Debug summary
	// of the finished configuration here.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel. Unknown enum values and risky but
	// legal configuration values are reported at this level.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel. Recovered event-handler panics are
	// reported at this level.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at FatalLevel and then terminates the process.
	//
	// Nothing in this module calls Fatal; configuration faults come back as
	// errors and the embedding entry point decides whether to exit.
	Fatal(msg string, keysAndValues ...any)
}

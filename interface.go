package logsink

// Logger is the logging surface handed to concurrent callers. Implementations
// synchronise internally; callers never lock.
type Logger interface {
	Log(level Severity, message string)
	Logf(level Severity, format string, args ...interface{})

	Debug(message string)
	Info(message string)
	Warning(message string)
	Error(message string)
	Critical(message string)
}

var _ Logger = (*LogSink)(nil)

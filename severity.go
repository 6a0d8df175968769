package logsink

import (
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// Severity is the ordered importance of a log message. Ordering follows
// declaration order and is compared as an integer.
type Severity int8

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Critical
)

var severityNames = [...]string{
	Debug:    "DEBUG",
	Info:     "INFO",
	Warning:  "WARNING",
	Error:    "ERROR",
	Critical: "CRITICAL",
}

// String returns the upper-case name written into log lines.
func (s Severity) String() string {
	if s < Debug || s > Critical {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// Enabled reports whether s passes a threshold of minimum.
func (s Severity) Enabled(minimum Severity) bool {
	return s >= minimum
}

// ParseSeverity parses a case-insensitive level name. Besides the five
// severity names it accepts the zerolog spellings trace, warn, fatal and panic.
func ParseSeverity(level string) (Severity, error) {
	const op errors.Op = "logsink.ParseSeverity"

	name := strings.ToLower(strings.TrimSpace(level))
	switch name {
	case emptyString:
		return Info, errors.New(op).Msg(errMsgUnknownLevel)
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "critical":
		return Critical, nil
	}

	l, err := parseLevel(name)
	if err != nil {
		return Info, errors.New(op).Err(err).Msg(errMsgUnknownLevel)
	}
	s, ok := severityFromZerolog(l)
	if !ok {
		return Info, errors.New(op).Msg(errMsgUnknownLevel)
	}
	return s, nil
}

// severityFromZerolog maps a zerolog level onto a Severity. It reports false
// for levels that never produce output.
func severityFromZerolog(l zerolog.Level) (Severity, bool) {
	switch l {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return Debug, true
	case zerolog.InfoLevel, zerolog.NoLevel:
		return Info, true
	case zerolog.WarnLevel:
		return Warning, true
	case zerolog.ErrorLevel:
		return Error, true
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return Critical, true
	default:
		return Info, false
	}
}

func (s Severity) zerologLevel() zerolog.Level {
	switch s {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warning:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

package logsink

import "os"

const (
	// DefaultPath is the destination file used when none is given.
	DefaultPath = "app.log"
	// DefaultSeverity is the minimum severity used when none is given.
	DefaultSeverity = Info

	timestampLayout = "2006-01-02 15:04:05"
	fileFlags       = os.O_APPEND | os.O_CREATE | os.O_WRONLY
	fileMode        = 0o644
	emptyString     = ""
)

const (
	errMsgNilConfig      = "Logging config is nil."
	errMsgConfigInvalid  = "Logging configuration is invalid."
	errMsgUnknownLevel   = "Unknown severity level."
	errMsgConfigRead     = "Logging config file could not be read."
	errMsgConfigDecode   = "Logging config file could not be decoded."
	errMsgFileClose      = "Log file could not be closed."
	diagMsgFileOpenError = "Failed to open the log file"
)

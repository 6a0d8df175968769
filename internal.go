package logsink

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewDiagnostics returns the console logger used to report problems with the
// sink itself (and with the demo driver). It never writes into a LogSink.
func NewDiagnostics(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	_, isFile := w.(*os.File)
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isFile,
		TimeFormat: timestampLayout,
	}
	return zerolog.New(cw).With().Timestamp().Logger()
}

// openFile opens path for appending. A failure is reported once on the
// diagnostics logger and leaves the sink console-only.
func (s *LogSink) openFile(diag *zerolog.Logger) {
	f, err := os.OpenFile(s.path, fileFlags, fileMode)
	if err != nil {
		WithErrorChain(diag.Error(), err).Str("path", s.path).Msg(diagMsgFileOpenError)
		return
	}
	s.file = f
}

package logsink

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"go.uber.org/atomic"
)

// LogSink writes severity-tagged lines to the console and to a single
// append-mode file. It is safe for concurrent use; one value is meant to be
// shared by every goroutine that logs.
type LogSink struct {
	path    string
	minimum Severity

	mu      sync.Mutex
	console io.Writer
	file    io.WriteCloser

	closed atomic.Bool
	now    func() time.Time
}

// Option customises a LogSink at construction.
type Option func(*options)

type options struct {
	console     io.Writer
	diagnostics io.Writer
	now         func() time.Time
}

// WithConsole replaces os.Stdout as the console sink.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.console = w
		}
	}
}

// WithDiagnostics replaces os.Stderr as the destination of the one-time
// report emitted when the log file cannot be opened.
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.diagnostics = w
		}
	}
}

// WithClock replaces time.Now as the source of line timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// linePool holds scratch buffers so each accepted line is rendered once and
// handed to both sinks as a single write.
var linePool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// New opens path in append mode and returns a ready sink. An empty path
// selects DefaultPath. If the file cannot be opened the failure is reported
// once to the diagnostics writer and the sink logs to the console only.
func New(path string, minimum Severity, opts ...Option) *LogSink {
	o := options{
		console:     os.Stdout,
		diagnostics: os.Stderr,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if path == emptyString {
		path = DefaultPath
	}

	s := &LogSink{
		path:    path,
		minimum: minimum,
		console: o.console,
		now:     o.now,
	}
	diag := NewDiagnostics(o.diagnostics)
	s.openFile(&diag)
	return s
}

// Default returns a sink writing to DefaultPath at DefaultSeverity.
func Default(opts ...Option) *LogSink {
	return New(DefaultPath, DefaultSeverity, opts...)
}

// NewFromConfig validates cfg and builds a sink from it. Only an invalid
// configuration is an error; an unopenable file is not.
func NewFromConfig(cfg *Config, opts ...Option) (*LogSink, error) {
	const op errors.Op = "logsink.NewFromConfig"
	if cfg == nil {
		return nil, errors.New(op).Msg(errMsgNilConfig)
	}

	c := *cfg
	c.Defaults()
	if err := validateConfig(&c); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	minimum, err := ParseSeverity(c.Level)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return New(c.Path, minimum, opts...), nil
}

// Log writes message at level to both sinks unless level is below the
// minimum severity. The message is written as-is. Write errors are dropped.
func (s *LogSink) Log(level Severity, message string) {
	if s == nil || !level.Enabled(s.minimum) {
		return
	}
	s.writeLines(level, message)
}

// Logf is Log with fmt.Sprintf formatting, applied only when level passes
// the threshold.
func (s *LogSink) Logf(level Severity, format string, args ...interface{}) {
	if s == nil || !level.Enabled(s.minimum) {
		return
	}
	s.writeLines(level, fmt.Sprintf(format, args...))
}

func (s *LogSink) Debug(message string)    { s.Log(Debug, message) }
func (s *LogSink) Info(message string)     { s.Log(Info, message) }
func (s *LogSink) Warning(message string)  { s.Log(Warning, message) }
func (s *LogSink) Error(message string)    { s.Log(Error, message) }
func (s *LogSink) Critical(message string) { s.Log(Critical, message) }

// writeLines renders and writes every message under one hold of the write
// lock, so the lines reach each sink contiguously and in order.
func (s *LogSink) writeLines(level Severity, messages ...string) {
	buf := linePool.Get().(*bytes.Buffer)
	buf.Reset()
	defer linePool.Put(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := "[" + s.now().Format(timestampLayout) + "][" + level.String() + "]"
	for _, m := range messages {
		buf.WriteString(prefix)
		buf.WriteString(m)
		buf.WriteByte('\n')
	}

	_, _ = s.console.Write(buf.Bytes())
	if s.file != nil {
		_, _ = s.file.Write(buf.Bytes())
	}
}

// Close releases the log file. It waits for an in-flight write to finish,
// runs at most once, and leaves the sink logging to the console only.
func (s *LogSink) Close() error {
	const op errors.Op = "logsink.Close"
	if s == nil || !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.mu.Lock()
	f := s.file
	s.file = nil
	s.mu.Unlock()

	if f == nil {
		return nil
	}
	if err := f.Close(); err != nil {
		return errors.New(op).Err(err).Msg(errMsgFileClose)
	}
	return nil
}

// MinimumSeverity returns the threshold fixed at construction.
func (s *LogSink) MinimumSeverity() Severity {
	return s.minimum
}

// Path returns the destination file path, whether or not it could be opened.
func (s *LogSink) Path() string {
	return s.path
}

// FileAvailable reports whether lines are currently reaching the log file.
func (s *LogSink) FileAvailable() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file != nil
}

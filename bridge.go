package logsink

import (
	"bytes"

	"github.com/rs/zerolog"
)

var _ zerolog.LevelWriter = (*LogSink)(nil)

// Write logs p at Info severity with its trailing newline removed. It lets a
// LogSink stand in wherever an io.Writer is expected.
func (s *LogSink) Write(p []byte) (int, error) {
	return s.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter. Each zerolog event becomes one
// line, tagged with the matching severity and filtered like any other call.
// It always reports success.
func (s *LogSink) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	level, ok := severityFromZerolog(l)
	if !ok {
		return len(p), nil
	}
	s.Log(level, string(bytes.TrimSuffix(p, []byte{'\n'})))
	return len(p), nil
}

// Zerolog returns a zerolog logger that writes its events into the sink.
// Its level mirrors the sink's minimum severity so filtered events are never
// encoded.
func (s *LogSink) Zerolog() zerolog.Logger {
	return zerolog.New(s).Level(s.minimum.zerologLevel())
}

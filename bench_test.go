package logsink

import (
	"io"
	"path/filepath"
	"strconv"
	"testing"
)

// newBenchSink constructs a sink whose console is discarded so the benchmark
// measures formatting, locking and the file write.
func newBenchSink(b *testing.B, minimum Severity) *LogSink {
	b.Helper()
	s := New(filepath.Join(b.TempDir(), "bench.log"), minimum,
		WithConsole(io.Discard), WithDiagnostics(io.Discard))
	b.Cleanup(func() { _ = s.Close() })
	return s
}

func BenchmarkInfo(b *testing.B) {
	s := newBenchSink(b, Info)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Info("hello")
	}
}

func BenchmarkDebug_Filtered(b *testing.B) {
	s := newBenchSink(b, Info)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Debug("dropped")
	}
}

func BenchmarkLogf(b *testing.B) {
	s := newBenchSink(b, Info)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Logf(Warning, "iteration %d", i)
	}
}

func BenchmarkParallel_Info(b *testing.B) {
	s := newBenchSink(b, Info)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.Info("worker message " + strconv.Itoa(i))
			i++
		}
	})
}

func BenchmarkParallel_Zerolog(b *testing.B) {
	s := newBenchSink(b, Info)
	zl := s.Zerolog()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			zl.Info().Str("k", "v").Msg("hi")
		}
	})
}

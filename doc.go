// Package logsink is a small concurrency-safe logger that writes every
// accepted message to two fixed sinks: the console and one append-mode file.
//
// Key features
//   - Five ordered severities (DEBUG < INFO < WARNING < ERROR < CRITICAL)
//     with a minimum threshold fixed at construction
//   - Lines are rendered as "[YYYY-MM-DD HH:MM:SS][LEVEL]message" in local
//     time and written whole to each sink under a single mutex
//   - A file that cannot be opened is reported once on stderr; the sink then
//     keeps logging to the console alone
//   - Write errors never reach the caller
//   - A zerolog.LevelWriter bridge so zerolog-based code can log into a sink
//
// Typical usage
//
//	sink := logsink.New("app.log", logsink.Info)
//	defer sink.Close()
//
//	sink.Warning("low disk")
//	sink.Debug("dropped, below INFO")
package logsink

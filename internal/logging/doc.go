// Package logging provides structured logging for toaster.
//
// It wraps Go's log/slog with a JSON handler. Logs go to debug.log inside a
// state directory, or to stderr when no directory is configured. The TUI owns
// the terminal while it runs, so the demo always logs to a file.
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	logger := logging.NewLogger(dir, "DEBUG")
//	storeLog := logger.WithComponent("store")
//	storeLog.WithToast(id).Debug("published", "category", "success")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"published","component":"store","toast_id":"6f1c...","category":"success"}
//
// # Testing
//
// [NopLogger] discards everything. [NewWriterLogger] writes to any io.Writer,
// which lets tests assert on emitted records.
package logging

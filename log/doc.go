// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured with functional options at creation time and may
// be derived from one another with [Logger.Wrap] and [Logger.With]:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//
//	logger = logger.With(slog.String("table", "seed-to-soil"))
//	logger.Debug("table built", slog.Int("rows", 2))
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below slog's debug level and is
// used for per-value diagnostics.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText] select the underlying slog
// handler. With [WithPretty] enabled, both formats are colorized and
// rendered without quoting; JSON records span multiple lines.
//
// # Default Logger
//
// The package-level functions ([Info], [DebugContext], ...) write through a
// default logger that is reconfigured with [Config]. Context-unaware
// variants use [DefaultContextProvider].
package log

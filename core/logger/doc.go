// Package logger builds slog loggers and provides attribute helpers used
// across spacefold.
//
// # Building a logger
//
//	log := logger.New(
//		logger.WithDevelopment("counter"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log := logger.New(
//		logger.WithProduction("counter"),
//		logger.WithOutput(os.Stderr),
//	)
//
// Development loggers write text at debug level; production loggers write
// JSON at info level. Both tag records with "app" and "env".
//
// ParseLevel turns configuration strings into a slog.Level, so a level can
// come straight from the environment:
//
//	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
//
// # Attributes
//
// Helpers return an empty slog.Attr for nil or zero inputs, which slog
// omits from the output:
//
//	log.Error("async listener failed",
//		logger.Error(err),
//		logger.PublisherID(pub.ID()),
//		logger.SubscriberID(sub.ID()),
//	)
//
//	log.Debug("event dispatched",
//		logger.Publisher("inc"),
//		logger.Listeners(3),
//	)
//
// Discard returns a logger that writes nowhere, for tests and for callers
// that want silence.
package logger

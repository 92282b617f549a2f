// Package logging provides a minimal logging facade for the signing package.
//
// The Logger interface wraps the subset of log/slog used by signing contexts.
// It is intentionally small so applications can plug in their own
// implementation for testing, redaction or integration with an existing
// logging system.
//
// # Default Implementation
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// # Redaction
//
// Secret material must never be logged. Use Redacted to record that a value
// was intentionally left out:
//
//	logger.Debug("private key rejected", logging.Redacted("private_key"))
//	// Logs: private_key="[redacted]"
package logging

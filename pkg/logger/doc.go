// Package logger builds log/slog loggers for fieldcheck components.
//
// New returns a *slog.Logger writing JSON (the default) or text records,
// configured with functional options:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithTextFormatter(),
//		logger.WithAttr(logger.Component("validator")),
//	)
//
// WithEnvironment applies development or production defaults, and
// WithContextValue / WithContextExtractors add attributes taken from the
// context passed to the *Context logging methods.
// Bind resolves those attributes once for a context and returns a logger
// that carries them, for components that do not pass a context per record.
//
// Attribute helpers (Error, Field, Constraint, Locale, …) keep key names
// consistent across packages. Discard returns a logger that drops records;
// components default to it so that logging stays opt-in.
package logger

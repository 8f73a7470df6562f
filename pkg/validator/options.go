package validator

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets the registry used to resolve constraint validators.
// A nil registry keeps the default one.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithTranslator sets the message translator. A nil translator keeps the
// built-in English and Polish messages.
func WithTranslator(t Translator) Option {
	return func(e *Engine) {
		if t != nil {
			e.translator = t
		}
	}
}

// WithLocale sets the requested locale, e.g. "pl", "pl_PL" or "en-US".
// It is resolved against the translator's languages when the engine is built.
func WithLocale(locale string) Option {
	return func(e *Engine) {
		e.locale = locale
	}
}

// WithLogger sets the logger. Field results are logged at debug level and
// aborted validations at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

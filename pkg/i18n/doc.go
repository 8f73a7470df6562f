// Package i18n loads translation bundles and resolves message templates for
// a language.
//
// Bundles are maps keyed by language code whose values are nested maps of
// templates, addressed with dot-separated keys. They are loaded once by a
// TranslationAdapter: MapAdapter for in-memory data, FileAdapter for a single
// file, and FSAdapter (or NewDirectoryAdapter) for every YAML or JSON file of
// a directory, including an embed.FS.
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewDirectoryAdapter(nil, "./translations"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//
//	lang := translator.Match("pl_PL") // "pl"
//	msg := translator.T(lang, "validation.size.text_too_short", "min", "3")
//
// # Fallback
//
// Match negotiates a requested locale against the supported languages with
// golang.org/x/text/language; anything unsupported resolves to the default
// language. T looks a key up in the requested language, then in the default
// language, then returns the key itself (see WithFallbackToKey).
//
// Templates use named placeholders, %{name}, filled from name/value pairs.
//
// # Concurrency
//
// Translations never change after NewTranslator returns and a Translator is
// safe for concurrent use. The locale is not
// global state: callers pass it per call, or carry it in a context with
// SetLocale.
package i18n

package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Match resolves a requested locale such as "pl_PL", "pl-PL" or "en-US" to
// the closest supported language. Locales that match nothing, or cannot be
// parsed, resolve to the default language. Results are cached per locale.
func (t *Translator) Match(locale string) string {
	if _, ok := t.translations[locale]; ok {
		return locale
	}
	if locale == "" {
		return t.defaultLang
	}
	if lang, ok := t.matches.get(locale); ok {
		return lang
	}

	lang := t.match(locale)
	t.matches.put(locale, lang)
	return lang
}

func (t *Translator) match(locale string) string {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(t.tagLangs) {
		return t.defaultLang
	}
	return t.tagLangs[idx]
}

// normalizeLocale accepts POSIX style identifiers (pl_PL, en_US.UTF-8).
func normalizeLocale(locale string) string {
	if idx := strings.IndexAny(locale, ".@"); idx != -1 {
		locale = locale[:idx]
	}
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func parseTag(lang string) language.Tag {
	tag, err := language.Parse(normalizeLocale(lang))
	if err != nil {
		return language.Und
	}
	return tag
}

type localeContextKey struct{}

// SetLocale stores the locale in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale stored by SetLocale, if any.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale, locale != ""
}

// GetLocale returns the locale from the context, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, ok := LocaleFromContext(ctx); ok {
		return locale
	}
	return DefaultLanguage
}

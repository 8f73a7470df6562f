package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no default language is configured.
const DefaultLanguage = "en"

// Translator resolves translation keys for a language, falling back to the
// default language bundle and finally to the key itself.
//
// Translations are immutable after construction; a Translator is safe for
// concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	langs    []string // supported, default first
	tagLangs []string // language of each matcher tag
	matcher  language.Matcher

	matchCacheSize int
	matches        *matchCache
}

// NewTranslator loads translations through adapter and prepares locale matching.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		logger:         slog.New(slog.DiscardHandler),
		matchCacheSize: DefaultMatchCacheSize,
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.buildMatcher()
	t.matches = newMatchCache(t.matchCacheSize)

	if _, ok := translations[t.defaultLang]; !ok {
		t.logger.WarnContext(ctx, "Default language has no translations", "lang", t.defaultLang)
	}
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.langs)
	return t, nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return errors.Join(ErrInvalidTranslations, errors.New("empty language code"))
		}
		if translations == nil {
			return errors.Join(ErrInvalidTranslations, fmt.Errorf("nil translations for language %q", lang))
		}
	}
	return nil
}

// buildMatcher orders the supported languages with the default first so
// that an unmatched locale resolves to it.
func (t *Translator) buildMatcher() {
	others := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		if lang != t.defaultLang {
			others = append(others, lang)
		}
	}
	slices.Sort(others)

	t.tagLangs = append([]string{t.defaultLang}, others...)
	t.langs = t.tagLangs
	if _, ok := t.translations[t.defaultLang]; !ok {
		t.langs = others
	}

	tags := make([]language.Tag, len(t.tagLangs))
	for i, lang := range t.tagLangs {
		tags[i] = parseTag(lang)
	}
	t.matcher = language.NewMatcher(tags)
}

// SupportedLanguages returns the languages with translations, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// lookup traverses nested maps with a dot-separated key, e.g.
// "validation.size.not_proper".
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		current, ok = asStringMap(val)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// template finds the template for key in lang, then in the default language.
func (t *Translator) template(lang, key string) (string, bool) {
	for _, l := range []string{lang, t.defaultLang} {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}
		val, ok := lookup(langMap, key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		default:
			if t.missingLogMode {
				t.logger.Warn("Translation is not a string", "lang", l, "key", key, "type", fmt.Sprintf("%T", val))
			}
		}
	}
	return "", false
}

// T translates key for lang and substitutes %{name} placeholders from args
// given as name, value pairs:
//
//	translator.T("en", "validation.email", "value", "a@apl")
//
// A language without a bundle, or a bundle without the key, falls back to
// the default language. If that fails too, the key itself is returned when
// fallback to key is enabled, otherwise an empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.template(lang, key); ok {
		return substitute(tmpl, args)
	}
	if t.missingLogMode {
		t.logger.Warn("Translation not found", "lang", lang, "key", key)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is like T but returns defaultValue when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.template(lang, key); ok {
		return substitute(tmpl, args)
	}
	return substitute(defaultValue, args)
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders. Unknown placeholders are kept;
// a trailing unpaired argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

package validator

// Translation keys of the built-in messages.
const (
	KeyNotNull = "validation.not_null"
	KeyEmail   = "validation.email"

	KeySizeNotProper          = "validation.size.not_proper"
	KeySizeTextTooShort       = "validation.size.text_too_short"
	KeySizeTextTooLong        = "validation.size.text_too_long"
	KeySizeCollectionTooShort = "validation.size.collection_too_short"
	KeySizeCollectionTooLong  = "validation.size.collection_too_long"
)

// MessageFunc returns the localized template for key with %{name}
// placeholders substituted from args given as name, value pairs.
type MessageFunc func(key string, args ...string) string

// Translator resolves message keys for a language. *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
	Match(locale string) string
}

func localize(tr Translator, lang string) MessageFunc {
	return func(key string, args ...string) string {
		return tr.T(lang, key, args...)
	}
}

package validator

import (
	"context"
	"embed"
	"sync"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

//go:embed translations/*.yaml
var translationsFS embed.FS

// DefaultTranslator loads the built-in English and Polish messages.
func DefaultTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), translationsFS, "translations")
	return i18n.NewTranslator(ctx, adapter, opts...)
}

var builtinTranslator = sync.OnceValues(func() (*i18n.Translator, error) {
	return DefaultTranslator(context.Background())
})

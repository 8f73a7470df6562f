package i18n_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

func BenchmarkTranslatorT(b *testing.B) {
	translations := map[string]map[string]any{}
	for _, lang := range []string{"en", "pl", "de", "fr"} {
		keys := make(map[string]any, 100)
		for i := range 100 {
			keys[fmt.Sprintf("key_%d", i)] = fmt.Sprintf("Value %d in %s with %%{value}", i, lang)
		}
		translations[lang] = map[string]any{"validation": keys}
	}

	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: translations})
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		for i := range 10 {
			tr.T("pl", fmt.Sprintf("validation.key_%d", i*10), "value", "a@apl")
		}
	}
}

func BenchmarkTranslatorMatch(b *testing.B) {
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: testTranslations()})
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		tr.Match("pl_PL.UTF-8")
		tr.Match("fr-CA")
	}
}

package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Parser decodes a translation file into per-language maps. The top-level
// keys of a file are language codes:
//
//	en:
//	  validation:
//	    not_null: "is null but should be not null."
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser reads files with ext,
	// given with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser matching the file extension, or nil.
func NewParserForFile(filename string) Parser {
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(fileExtension(filename)) {
			return p
		}
	}
	return nil
}

func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

func hasExtension(ext string, want ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, w := range want {
		if strings.EqualFold(ext, w) {
			return true
		}
	}
	return false
}

// splitLanguages checks that every top-level entry is a map of translations.
func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := asStringMap(val)
		if !ok {
			return nil, fmt.Errorf("language %q: expected a map of translations, got %T", lang, val)
		}
		result[lang] = m
	}
	if len(result) == 0 {
		return nil, errors.New("no languages found")
	}
	return result, nil
}

// asStringMap accepts both map[string]any and the map[any]any produced by
// some YAML decoders.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

package i18n

import (
	"context"
	"errors"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads .yaml and .yml translation files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result, err := splitLanguages(data)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "yaml", "yml")
}

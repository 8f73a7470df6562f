package i18n

import (
	"context"
	"encoding/json"
	"errors"
)

// JSONParser reads .json translation files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result, err := splitLanguages(data)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return result, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "json")
}

package loader

import (
	"encoding/json"

	"github.com/tidwall/jsonc"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
)

// JSONCType is the type hint selecting the JSON loader.
const JSONCType = "json"

var _ ports.FileLoader = (*JSONCLoader)(nil)

// JSONCLoader loads .json and .jsonc documents. Comments and trailing commas
// are accepted.
type JSONCLoader struct {
	fileLoader
}

// NewJSONCLoader creates a JSONCLoader resolving files through locator.
func NewJSONCLoader(locator ports.Locator, logger ports.Logger) *JSONCLoader {
	return &JSONCLoader{fileLoader{
		typ:     JSONCType,
		exts:    []string{".json", ".jsonc"},
		locator: locator,
		logger:  logger,
		decode:  decodeJSONC,
	}}
}

func decodeJSONC(data []byte) (domain.Document, error) {
	var doc map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return domain.Document{}, nil
	}
	return doc, nil
}

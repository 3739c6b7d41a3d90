package loader

import (
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLType is the type hint selecting the YAML loader.
const YAMLType = "yaml"

var _ ports.FileLoader = (*YAMLLoader)(nil)

// YAMLLoader loads .yaml and .yml documents.
type YAMLLoader struct {
	fileLoader
}

// NewYAMLLoader creates a YAMLLoader resolving files through locator.
func NewYAMLLoader(locator ports.Locator, logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{fileLoader{
		typ:     YAMLType,
		exts:    []string{".yaml", ".yml"},
		locator: locator,
		logger:  logger,
		decode:  decodeYAML,
	}}
}

func decodeYAML(data []byte) (domain.Document, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return domain.Document{}, nil
	}
	return doc, nil
}

package loader

import (
	"fmt"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/zerr"
)

// ImportEntry is one item of a document's imports list.
type ImportEntry struct {
	Resource     string `yaml:"resource"      json:"resource"`
	Type         string `yaml:"type"          json:"type"`
	IgnoreErrors bool   `yaml:"ignore_errors" json:"ignore_errors"`
}

// parseImports reads the imports list. Entries are either a plain resource
// string or a mapping with resource, type and ignore_errors keys.
func parseImports(raw any) ([]ImportEntry, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidDocument, "imports must be a list"),
			"value_type", fmt.Sprintf("%T", raw),
		)
	}

	entries := make([]ImportEntry, 0, len(list))
	for idx, item := range list {
		switch v := item.(type) {
		case string:
			entries = append(entries, ImportEntry{Resource: v})
		case map[string]any:
			entry, err := parseEntry(v)
			if err != nil {
				return nil, zerr.With(err, "import_index", idx)
			}
			entries = append(entries, entry)
		default:
			return nil, zerr.With(
				zerr.Wrap(domain.ErrInvalidDocument, "import entry must be a string or a mapping"),
				"import_index", idx,
			)
		}
	}
	return entries, nil
}

func parseEntry(m map[string]any) (ImportEntry, error) {
	var entry ImportEntry

	resource, ok := m["resource"].(string)
	if !ok || resource == "" {
		return entry, zerr.Wrap(domain.ErrInvalidDocument, "import entry requires a resource")
	}
	entry.Resource = resource

	if raw, present := m["type"]; present {
		typ, ok := raw.(string)
		if !ok {
			return entry, zerr.Wrap(domain.ErrInvalidDocument, "import type must be a string")
		}
		entry.Type = typ
	}

	if raw, present := m["ignore_errors"]; present {
		ignore, ok := raw.(bool)
		if !ok {
			return entry, zerr.Wrap(domain.ErrInvalidDocument, "ignore_errors must be a boolean")
		}
		entry.IgnoreErrors = ignore
	}
	return entry, nil
}

package domain

import (
	"fmt"
	"maps"

	"go.trai.ch/zerr"
)

// ImportsKey is the top-level document key listing resources to import.
const ImportsKey = "imports"

// Document is a decoded configuration tree.
type Document map[string]any

// MergeDocuments deep-merges documents in order. Later values override
// earlier ones, and nested maps are merged key by key. The inputs are not modified.
func MergeDocuments(docs ...Document) Document {
	out := Document{}
	for _, d := range docs {
		mergeInto(out, d)
	}
	return out
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := asMap(v)
		dstMap, dstIsMap := asMap(dst[k])
		if srcIsMap && dstIsMap {
			merged := maps.Clone(dstMap)
			mergeInto(merged, srcMap)
			dst[k] = merged
			continue
		}
		if srcIsMap {
			cloned := map[string]any{}
			mergeInto(cloned, srcMap)
			dst[k] = cloned
			continue
		}
		dst[k] = v
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// DocumentsFrom flattens an import result value into documents. Values that
// are neither documents nor lists of documents are reported as invalid.
func DocumentsFrom(v any) ([]Document, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case Document:
		return []Document{t}, nil
	case map[string]any:
		return []Document{t}, nil
	case []any:
		out := make([]Document, 0, len(t))
		for _, item := range t {
			docs, err := DocumentsFrom(item)
			if err != nil {
				return nil, err
			}
			out = append(out, docs...)
		}
		return out, nil
	default:
		return nil, zerr.With(ErrInvalidDocument, "value_type", fmt.Sprintf("%T", v))
	}
}

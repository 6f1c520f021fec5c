package markdown

import (
	"bytes"
	"fmt"
	"maps"

	"github.com/adrg/frontmatter"
)

// ParseFrontMatter extracts the header block and Markdown body from source.
// The header is returned as a loosely typed field set with nested maps keyed
// by string. A source without a header yields empty fields and the whole
// source as body.
func ParseFrontMatter(source []byte) (map[string]any, []byte, error) {
	meta := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	fields := make(map[string]any, len(meta))
	for key, value := range meta {
		fields[key] = normalizeValue(value)
	}
	return fields, body, nil
}

// normalizeValue rewrites YAML decoder maps keyed by interface{} into
// map[string]any so callers never need to care which decoder produced them.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeValue(item)
		}
		return out
	case map[string]any:
		out := maps.Clone(v)
		for key, item := range out {
			out[key] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}

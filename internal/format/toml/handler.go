// Package toml provides the mods.toml parser.
package toml

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/mdg-convert/internal/format"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

// Handler implements format.Handler for TOML files.
type Handler struct{}

// New creates a new TOML handler.
func New() *Handler {
	return &Handler{}
}

// Parse reads TOML bytes and returns a tree whose mappings keep document key order.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (tree.Node, error) {
	if opts.StripComments {
		return nil, fmt.Errorf("strip-comments is not supported for TOML format")
	}

	// Decode into a generic map to get values
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	// Convert to ordered map using metadata for key order
	return tree.FromValue(convertToOrderedMapWithMeta(raw, meta, nil)), nil
}

// convertToOrderedMapWithMeta recursively converts map[string]any to *orderedmap.OrderedMap
// using TOML metadata to preserve key order.
func convertToOrderedMapWithMeta(v any, meta toml.MetaData, prefix []string) any {
	switch val := v.(type) {
	case map[string]any:
		result := orderedmap.New()

		for _, k := range getKeysInOrder(meta, prefix, val) {
			childPrefix := make([]string, len(prefix), len(prefix)+1)
			copy(childPrefix, prefix)
			childPrefix = append(childPrefix, k)
			result.Set(k, convertToOrderedMapWithMeta(val[k], meta, childPrefix))
		}
		return result
	case []map[string]any:
		// Array of tables: every element shares the same key prefix in the metadata
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertToOrderedMapWithMeta(item, meta, prefix)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = convertToOrderedMapWithMeta(item, meta, prefix)
		}
		return result
	default:
		return val
	}
}

// getKeysInOrder returns map keys in document order using TOML metadata.
func getKeysInOrder(meta toml.MetaData, prefix []string, m map[string]any) []string {
	needed := make(map[string]bool, len(m))
	for k := range m {
		needed[k] = true
	}

	var ordered []string
	seen := make(map[string]bool, len(m))
	for _, key := range meta.Keys() {
		if len(key) == len(prefix)+1 && matchesPrefix(key, prefix) {
			k := key[len(prefix)]
			if needed[k] && !seen[k] {
				ordered = append(ordered, k)
				seen[k] = true
			}
		}
	}

	// Inline tables inside arrays are not reported by the metadata
	var rest []string
	for k := range needed {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

// matchesPrefix checks if key starts with prefix.
func matchesPrefix(key toml.Key, prefix []string) bool {
	if len(key) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if key[i] != p {
			return false
		}
	}
	return true
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)

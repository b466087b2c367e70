// Package json provides the quilt.mod.json parser.
package json

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/mdg-convert/internal/format"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

// Handler implements format.Handler for JSON/JSONC files.
type Handler struct{}

// New creates a new JSON handler.
func New() *Handler {
	return &Handler{}
}

// commentRegex matches single-line // comments.
var commentRegex = regexp.MustCompile(`(?m)^\s*//.*$|//[^"]*$`)

// StripComments removes single-line // comments from JSON.
// This allows parsing JSONC (JSON with comments) files.
func StripComments(data []byte) []byte {
	return commentRegex.ReplaceAll(data, nil)
}

// Parse reads a JSON object and returns a tree whose mappings keep document key order.
func (h *Handler) Parse(data []byte, opts format.ParseOptions) (tree.Node, error) {
	if opts.StripComments {
		data = StripComments(data)
	}

	result := orderedmap.New()
	result.SetUseNumber(true)
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return tree.FromValue(result), nil
}

// Ensure Handler implements format.Handler.
var _ format.Handler = (*Handler)(nil)

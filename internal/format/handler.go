// Package format provides interfaces and implementations for reading the supported input formats.
package format

import "github.com/thirteen37/mdg-convert/internal/tree"

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	StripComments bool // Strip // comments (for JSONC)
}

// Handler defines the interface for input format parsers.
type Handler interface {
	// Parse reads raw bytes and returns the configuration tree.
	Parse(data []byte, opts ParseOptions) (tree.Node, error)
}

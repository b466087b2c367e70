// Package path provides path selector abstractions for navigating configuration trees.
package path

import (
	"strconv"
	"strings"
)

// Path represents a selector for navigating a configuration tree.
type Path interface {
	// Segments returns the path as a slice of string keys.
	Segments() []string

	// String returns a canonical string representation.
	String() string
}

// ArrayPath is a path specified as an array of string keys.
// Example: ["quilt_loader", "metadata", "license"]
type ArrayPath struct {
	segments []string
}

// New creates a new ArrayPath from string segments.
func New(segments ...string) *ArrayPath {
	return &ArrayPath{segments: segments}
}

// Child returns a new path with key appended. The receiver is not modified.
func (p *ArrayPath) Child(key string) *ArrayPath {
	segments := make([]string, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	return &ArrayPath{segments: append(segments, key)}
}

// Index returns a new path addressing the i-th element of a sequence.
func (p *ArrayPath) Index(i int) *ArrayPath {
	return p.Child(strconv.Itoa(i))
}

// Segments returns the path segments.
func (p *ArrayPath) Segments() []string {
	return p.segments
}

// String returns the path as dotted keys, e.g. "dependencies.examplemod.0.modId".
// The root path renders as "$".
func (p *ArrayPath) String() string {
	if len(p.segments) == 0 {
		return "$"
	}
	return strings.Join(p.segments, ".")
}

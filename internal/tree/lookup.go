package tree

import (
	"fmt"
	"strconv"

	"github.com/thirteen37/mdg-convert/internal/path"
)

// MissingFieldError reports a required field that is absent from the document.
type MissingFieldError struct {
	Path path.Path
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Path.String())
}

// TypeError reports a node whose shape does not match the schema.
type TypeError struct {
	Path path.Path
	Want string
	Got  Node
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %s", e.Path.String(), e.Want, Describe(e.Got))
}

// Describe names the shape of a node for error messages.
func Describe(n Node) string {
	switch v := n.(type) {
	case Scalar:
		return v.Kind().String()
	case Sequence:
		return "array"
	case *Mapping:
		return "table"
	}
	return "nothing"
}

// Lookup navigates from root along p. Mapping segments are keys; sequence segments
// are decimal indexes. Absent and empty values yield None.
func Lookup(root Node, p path.Path) Optional[Node] {
	current := root
	for _, segment := range p.Segments() {
		switch v := current.(type) {
		case *Mapping:
			next, ok := v.Get(segment)
			if !ok {
				return None[Node]()
			}
			current = next
		case Sequence:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(v) {
				return None[Node]()
			}
			current = v[i]
		default:
			return None[Node]()
		}
	}
	if IsEmpty(current) {
		return None[Node]()
	}
	return Some(current)
}

// Require is Lookup for fields that must be present.
func Require(root Node, p path.Path) (Node, error) {
	n, ok := Lookup(root, p).Get()
	if !ok {
		return nil, &MissingFieldError{Path: p}
	}
	return n, nil
}

// AsMapping asserts that n is a mapping.
func AsMapping(n Node, p path.Path) (*Mapping, error) {
	m, ok := n.(*Mapping)
	if !ok {
		return nil, &TypeError{Path: p, Want: "table", Got: n}
	}
	return m, nil
}

// AsSequence asserts that n is a sequence.
func AsSequence(n Node, p path.Path) (Sequence, error) {
	s, ok := n.(Sequence)
	if !ok {
		return nil, &TypeError{Path: p, Want: "array", Got: n}
	}
	return s, nil
}

// AsString asserts that n is a string scalar.
func AsString(n Node, p path.Path) (string, error) {
	if s, ok := n.(Scalar); ok {
		if str, ok := s.Str(); ok {
			return str, nil
		}
	}
	return "", &TypeError{Path: p, Want: "string", Got: n}
}

// AsBool asserts that n is a boolean scalar.
func AsBool(n Node, p path.Path) (bool, error) {
	if s, ok := n.(Scalar); ok {
		if b, ok := s.Bool(); ok {
			return b, nil
		}
	}
	return false, &TypeError{Path: p, Want: "boolean", Got: n}
}

// StringEquals reports whether n is a string scalar equal to want.
func StringEquals(n Node, want string) bool {
	s, ok := n.(Scalar)
	if !ok {
		return false
	}
	str, ok := s.Str()
	return ok && str == want
}

// RequireField returns m[key], reporting parent.key as missing when it is absent.
func RequireField(m *Mapping, parent *path.ArrayPath, key string) (Node, error) {
	n, ok := m.Field(key).Get()
	if !ok {
		return nil, &MissingFieldError{Path: parent.Child(key)}
	}
	return n, nil
}

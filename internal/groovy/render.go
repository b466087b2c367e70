package groovy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/thirteen37/mdg-convert/internal/tree"
)

// Render renders n as a Groovy expression. prefix is the indentation of the line the
// expression starts on; nested elements are indented one level deeper.
func Render(n tree.Node, prefix string) string {
	switch v := n.(type) {
	case tree.Scalar:
		return Scalar(v)
	case tree.Sequence:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = Render(item, prefix+Indent)
		}
		return List(items, prefix)
	case *tree.Mapping:
		entries := make([]string, 0, v.Len())
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			entries = append(entries, Key(k)+": "+Render(child, prefix+Indent))
		}
		return Map(entries, prefix)
	}
	panic(fmt.Sprintf("groovy: unexpected node %T", n))
}

// Scalar renders a leaf value.
func Scalar(s tree.Scalar) string {
	switch s.Kind() {
	case tree.String:
		str, _ := s.Str()
		return Quote(str)
	case tree.Integer:
		i, _ := s.Int()
		return strconv.FormatInt(i, 10)
	case tree.Float:
		f, _ := s.Float()
		return formatFloat(f)
	case tree.Number:
		n, _ := s.Numeral()
		return n
	case tree.Bool:
		b, _ := s.Bool()
		return strconv.FormatBool(b)
	case tree.Null:
		return "null"
	}
	panic(fmt.Sprintf("groovy: unexpected scalar kind %v", s.Kind()))
}

// List joins already rendered items into a list literal. Items must have been
// rendered with prefix+Indent.
func List(items []string, prefix string) string {
	if len(items) == 0 {
		return "[]"
	}
	return collection(items, prefix)
}

// Map joins already rendered "key: value" entries into a map literal.
func Map(entries []string, prefix string) string {
	if len(entries) == 0 {
		return "[:]"
	}
	return collection(entries, prefix)
}

func collection(items []string, prefix string) string {
	var b strings.Builder
	b.WriteString("[\n")
	for i, item := range items {
		b.WriteString(prefix + Indent + item)
		if i < len(items)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(prefix + "]")
	return b.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "Double.NaN"
	case math.IsInf(f, 1):
		return "Double.POSITIVE_INFINITY"
	case math.IsInf(f, -1):
		return "Double.NEGATIVE_INFINITY"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

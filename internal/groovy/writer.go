package groovy

import (
	"strings"

	"github.com/thirteen37/mdg-convert/internal/tree"
)

// Writer builds a script line by line, tracking the current indentation.
type Writer struct {
	buf    strings.Builder
	prefix string
}

// NewWriter creates an empty writer at the top level.
func NewWriter() *Writer {
	return &Writer{}
}

// Prefix returns the indentation of the current line. Pass it to Render when the
// rendered value is written on the current line.
func (w *Writer) Prefix() string {
	return w.prefix
}

// Line writes one statement at the current indentation.
func (w *Writer) Line(s string) {
	w.buf.WriteString(w.prefix)
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.buf.WriteByte('\n')
}

// Assign writes "name = value".
func (w *Writer) Assign(name, value string) {
	w.Line(name + " = " + value)
}

// AssignNode writes "name = <rendered n>".
func (w *Writer) AssignNode(name string, n tree.Node) {
	w.Assign(name, Render(n, w.prefix))
}

// AssignOptional writes "name = <rendered n>" when n is present.
func (w *Writer) AssignOptional(name string, n tree.Optional[tree.Node]) {
	if v, ok := n.Get(); ok {
		w.AssignNode(name, v)
	}
}

// Block writes "header {", the body one level deeper, then "}".
func (w *Writer) Block(header string, body func(w *Writer)) {
	w.Line(header + " {")
	outer := w.prefix
	w.prefix += Indent
	body(w)
	w.prefix = outer
	w.Line("}")
}

// String returns the script written so far.
func (w *Writer) String() string {
	return w.buf.String()
}

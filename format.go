package uni

import (
	"io"
	"strings"

	"github.com/KimNorgaard/go-uni/ast"
	"github.com/KimNorgaard/go-uni/internal/lexer"
)

const (
	indent    = "\t"
	lineBreak = "\r\n"
)

// formatter writes a UNI tree to an output stream.
type formatter struct {
	w     io.Writer
	depth int
	lines int
}

func newFormatter(w io.Writer) *formatter {
	return &formatter{w: w}
}

func (f *formatter) format(doc *ast.Document) error {
	if doc == nil {
		return nil
	}
	return f.writeElements(doc.Elements)
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) writeIndent() error {
	return f.write(strings.Repeat(indent, f.depth))
}

func (f *formatter) writeElements(elements []*ast.Element) error {
	for _, e := range elements {
		if f.lines > 0 {
			if err := f.write(lineBreak); err != nil {
				return err
			}
		}
		f.lines++
		if err := f.writeIndent(); err != nil {
			return err
		}
		if err := f.write(attributesText(e.Attributes)); err != nil {
			return err
		}
		f.depth++
		err := f.writeElements(e.Children)
		f.depth--
		if err != nil {
			return err
		}
	}
	return nil
}

func attributesText(attrs []ast.Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = attributeText(a)
	}
	return strings.Join(parts, " ")
}

func attributeText(a ast.Attribute) string {
	if a.Value.IsZero() {
		return quote(a.Name)
	}
	return quote(a.Name) + "=" + valueText(a.Value)
}

func valueText(v ast.Value) string {
	switch v.Kind() {
	case ast.ScalarValue:
		return quote(v.Scalar())
	case ast.ListValue:
		items := v.List()
		for i, item := range items {
			items[i] = quote(item)
		}
		return "(" + strings.Join(items, " ") + ")"
	}
	return ""
}

// quote returns s unchanged unless it is empty or holds a reserved
// character, in which case it is back-quoted with backticks doubled.
func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, lexer.Reserved) {
		return s
	}
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

package uni

import (
	"bytes"

	"github.com/KimNorgaard/go-uni/ast"
	"github.com/KimNorgaard/go-uni/internal/lexer"
	"github.com/KimNorgaard/go-uni/internal/parser"
)

// Parse parses a UNI document. On failure the returned error is an
// *errors.ParseError and no document is returned.
func Parse(data []byte, opts ...Option) (*ast.Document, error) {
	o := options{
		maxDepth: parser.DefaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	p := parser.New(lexer.New(data), parser.MaxDepth(o.maxDepth))
	return p.Parse()
}

// Marshal returns the canonical text of doc: one line per element, tab
// indentation, CRLF between lines and no trailing line break.
func Marshal(doc *ast.Document) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer do not fail.
	_ = newFormatter(&buf).format(doc)
	return buf.Bytes()
}

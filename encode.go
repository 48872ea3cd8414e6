package uni

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-uni/ast"
)

// Encoder writes UNI documents to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the canonical text of doc to the stream. Only write
// errors can make it fail.
func (e *Encoder) Encode(doc *ast.Document) error {
	if err := newFormatter(e.w).format(doc); err != nil {
		return fmt.Errorf("uni: %w", err)
	}
	return nil
}

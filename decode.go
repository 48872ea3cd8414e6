package uni

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-uni/ast"
)

// Decoder reads a UNI document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and parses it.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() (*ast.Document, error) {
	if d.r == nil {
		return nil, fmt.Errorf("uni: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("uni: read: %w", err)
	}
	return Parse(data, d.opts...)
}

package parser

import (
	"github.com/KimNorgaard/go-uni/errors"
	"github.com/KimNorgaard/go-uni/internal/lexer"
	"github.com/KimNorgaard/go-uni/internal/token"
)

// tokenReader gives the parser one token of lookahead. A lexer failure is
// kept in err and turns the stream into EOF, so that the parser unwinds
// without consuming anything further.
type tokenReader struct {
	l      *lexer.Lexer
	cur    token.Token
	passed token.Token
	err    error
}

func newTokenReader(l *lexer.Lexer) *tokenReader {
	r := &tokenReader{l: l}
	r.next()
	return r
}

func (r *tokenReader) next() {
	if r.err != nil {
		return
	}
	tok, err := r.l.NextToken()
	if err != nil {
		r.err = err
		tok = token.Token{Type: token.EOF, Offset: tok.Offset}
	}
	r.cur = tok
}

// consume advances past the current token if it has type t. The consumed
// token is available as r.passed.
func (r *tokenReader) consume(t token.Type) bool {
	if r.cur.Type != t {
		return false
	}
	r.passed = r.cur
	r.next()
	return true
}

// consumeIndent advances past an INDENT token of exactly depth.
func (r *tokenReader) consumeIndent(depth int) bool {
	if r.cur.Type != token.INDENT || r.cur.Depth != depth {
		return false
	}
	return r.consume(token.INDENT)
}

// require is consume that fails when the token is missing.
func (r *tokenReader) require(t token.Type) error {
	if r.consume(t) {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return r.errorf(errors.MissingExpectedToken, "expected %s, got %s", token.Describe(t), token.Describe(r.cur.Type))
}

func (r *tokenReader) errorf(kind errors.ErrorKind, format string, args ...any) error {
	return errors.New(kind, r.l.Source(), r.cur.Offset, format, args...)
}

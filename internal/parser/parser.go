package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-uni/ast"
	"github.com/KimNorgaard/go-uni/errors"
	"github.com/KimNorgaard/go-uni/internal/lexer"
	"github.com/KimNorgaard/go-uni/internal/token"
)

// DefaultMaxDepth bounds the nesting of elements unless MaxDepth says
// otherwise.
const DefaultMaxDepth = 1000

// Option configures a Parser.
type Option func(*Parser)

// MaxDepth limits elements to n nesting levels; MaxDepth(1) admits only
// top-level elements. Values below 1 are ignored.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parser builds an element tree from the token stream of a Lexer. The
// indentation depth carried by INDENT tokens is the only nesting signal.
type Parser struct {
	r        *tokenReader
	maxDepth int
}

// New creates a new parser.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	p.r = newTokenReader(l)
	return p
}

// Parse parses the whole input. Any failure aborts the parse; no partial
// document is returned.
func (p *Parser) Parse() (*ast.Document, error) {
	doc := &ast.Document{}
	if p.r.consumeIndent(0) {
		elements, err := p.parseSiblings(0)
		if err != nil {
			return nil, err
		}
		doc.Elements = elements
	}
	if p.r.err != nil {
		return nil, p.r.err
	}
	if p.r.cur.Type != token.EOF {
		return nil, p.r.errorf(errors.TrailingInput, "unexpected %s", describe(p.r.cur))
	}
	return doc, nil
}

// parseSiblings parses elements at depth for as long as the next line is
// indented by exactly depth. Any other indentation is left for the caller.
func (p *Parser) parseSiblings(depth int) ([]*ast.Element, error) {
	if depth >= p.maxDepth {
		return nil, p.r.errorf(errors.NestingTooDeep, "elements nested deeper than %d levels", p.maxDepth)
	}
	var elements []*ast.Element
	for {
		e, err := p.parseElement(depth)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
		if !p.r.consumeIndent(depth) {
			return elements, nil
		}
	}
}

// parseElement parses the attributes of one element, any "~" continuation
// lines that follow it, and then its children. Once the first child has
// been seen the nested block belongs to the children.
func (p *Parser) parseElement(depth int) (*ast.Element, error) {
	e := &ast.Element{}
	var err error
	if e.Attributes, err = p.parseAttributes(e.Attributes); err != nil {
		return nil, err
	}
	for p.r.consumeIndent(depth + 1) {
		if p.r.consume(token.TILDE) {
			if e.Attributes, err = p.parseAttributes(e.Attributes); err != nil {
				return nil, err
			}
			continue
		}
		if e.Children, err = p.parseSiblings(depth + 1); err != nil {
			return nil, err
		}
		break
	}
	return e, nil
}

func (p *Parser) parseAttributes(attrs []ast.Attribute) ([]ast.Attribute, error) {
	for p.r.consume(token.NAME) {
		attr := ast.Attribute{Name: p.r.passed.Literal}
		if p.r.consume(token.EQUALS) {
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			attr.Value = v
		}
		attrs = append(attrs, attr)
	}
	if p.r.err != nil {
		return nil, p.r.err
	}
	return attrs, nil
}

func (p *Parser) parseValue() (ast.Value, error) {
	if p.r.consume(token.LPAREN) {
		var items []string
		for p.r.consume(token.NAME) {
			items = append(items, p.r.passed.Literal)
		}
		if err := p.r.require(token.RPAREN); err != nil {
			return ast.Value{}, err
		}
		return ast.List(items...), nil
	}
	if err := p.r.require(token.NAME); err != nil {
		return ast.Value{}, err
	}
	return ast.Scalar(p.r.passed.Literal), nil
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.INDENT:
		return fmt.Sprintf("indentation of depth %d", tok.Depth)
	case token.NAME:
		return fmt.Sprintf("%q", tok.Literal)
	}
	return token.Describe(tok.Type)
}

// Package errors defines the failures reported while parsing UNI documents.
package errors

import (
	"fmt"

	"github.com/KimNorgaard/go-uni/internal/source"
)

// ErrorKind classifies a ParseError. It implements error so that callers
// can match a kind with errors.Is.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota + 1
	UnterminatedString
	InvalidEscapeSequence
	InvalidHexDigits
	MissingExpectedToken
	TrailingInput
	NestingTooDeep
)

var kindNames = map[ErrorKind]string{
	UnexpectedCharacter:   "unexpected character",
	UnterminatedString:    "unterminated string",
	InvalidEscapeSequence: "invalid escape sequence",
	InvalidHexDigits:      "invalid hex digits",
	MissingExpectedToken:  "missing expected token",
	TrailingInput:         "trailing input",
	NestingTooDeep:        "nesting too deep",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string { return k.String() }

// ParseError represents the error that stopped a parse. It includes the
// position of the error and the offending source line.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Offset  int
	Line    int // 1-based
	Column  int // 1-based, in runes
	Excerpt string
}

// New builds a ParseError for the given offset in src.
func New(kind ErrorKind, src []byte, offset int, format string, args ...any) *ParseError {
	ctx := source.At(src, offset)
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Offset:  ctx.Offset,
		Line:    ctx.Line + 1,
		Column:  ctx.Column(src),
		Excerpt: ctx.Excerpt(src),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uni: %s at line %d, column %d: %q", e.Message, e.Line, e.Column, e.Excerpt)
}

func (e *ParseError) Unwrap() error { return e.Kind }

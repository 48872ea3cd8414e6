package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-uni/errors"
	"github.com/KimNorgaard/go-uni/internal/token"
)

// Reserved lists the characters that cannot appear in an unquoted name or
// value.
const Reserved = " \t\r\n()=`'~#"

// Lexer holds the state for tokenizing UNI source.
type Lexer struct {
	src []byte
	r   *reader
	buf strings.Builder

	// sol is set until the first content line has been looked for. After
	// that, indentation is only scanned again past a line terminator.
	sol bool
}

// New creates and returns a new Lexer.
func New(src []byte) *Lexer {
	return &Lexer{
		src: src,
		r:   newReader(src),
		sol: true,
	}
}

// Source returns the input the lexer was created with.
func (l *Lexer) Source() []byte {
	return l.src
}

// NextToken scans the input and returns the next token. Once the input is
// exhausted it keeps returning EOF.
func (l *Lexer) NextToken() (token.Token, error) {
	if tok, ok := l.readIndentation(); ok {
		return tok, nil
	}

	start := l.r.pos
	tok := token.Token{Offset: start}
	if l.r.eof {
		tok.Type = token.EOF
		return tok, nil
	}

	switch {
	case l.r.consumeIf('='):
		tok.Type = token.EQUALS
	case l.r.consumeIf('~'):
		tok.Type = token.TILDE
	case l.r.consumeIf('('):
		tok.Type = token.LPAREN
	case l.r.consumeIf(')'):
		tok.Type = token.RPAREN
	case l.r.consumeIf('\''):
		lit, err := l.readSingleQuoted(start)
		if err != nil {
			return tok, err
		}
		tok.Type, tok.Literal = token.NAME, lit
	case l.r.consumeIf('`'):
		lit, err := l.readBackQuoted(start)
		if err != nil {
			return tok, err
		}
		tok.Type, tok.Literal = token.NAME, lit
	case l.r.consumeWhile(isBare):
		tok.Type, tok.Literal = token.NAME, l.r.captured()
	default:
		r, _ := utf8.DecodeRune(l.src[start:])
		return tok, l.errorf(errors.UnexpectedCharacter, start, "unexpected character %q", r)
	}

	l.r.consumeWhile(isBlank)
	return tok, nil
}

// readIndentation looks for the next content line, skipping blank and
// comment-only lines, and reports its tab depth.
func (l *Lexer) readIndentation() (token.Token, bool) {
	for l.sol || l.passLineEnd() {
		l.sol = false
		start := l.r.pos
		l.r.consumeWhile(isTab)
		depth := l.r.pos - start
		l.r.consumeWhile(isBlank)
		if l.r.eof {
			return token.Token{}, false
		}
		switch l.r.ch {
		case '\r', '\n', '#':
			continue
		}
		return token.Token{Type: token.INDENT, Depth: depth, Offset: l.r.pos}, true
	}
	return token.Token{}, false
}

// passLineEnd skips a comment, if any, and then one line terminator.
func (l *Lexer) passLineEnd() bool {
	if l.r.is('#') {
		l.r.consumeWhile(isNotLineEnd)
	}
	if l.r.consumeIf('\r') {
		l.r.consumeIf('\n')
		return true
	}
	return l.r.consumeIf('\n')
}

func (l *Lexer) readSingleQuoted(start int) (string, error) {
	l.buf.Reset()
	for !l.r.eof {
		if l.r.consumeIf('\'') {
			return l.buf.String(), nil
		}
		if !l.r.consumeIf('\\') {
			l.buf.WriteByte(l.r.ch)
			l.r.next()
			continue
		}
		if l.r.eof {
			break
		}
		if ch, ok := unescape(l.r.ch); ok {
			l.buf.WriteByte(ch)
			l.r.next()
			continue
		}
		var (
			val rune
			err error
		)
		switch {
		case l.r.consumeIf('x'):
			val, err = l.readHex(2)
		case l.r.consumeIf('u'):
			val, err = l.readHex(4)
		default:
			r, _ := utf8.DecodeRune(l.src[l.r.pos:])
			return "", l.errorf(errors.InvalidEscapeSequence, l.r.pos-1, "invalid escape sequence \\%c", r)
		}
		if err != nil {
			return "", err
		}
		l.buf.WriteRune(val)
	}
	return "", l.errorf(errors.UnterminatedString, start, "unterminated string")
}

func (l *Lexer) readBackQuoted(start int) (string, error) {
	l.buf.Reset()
	for {
		if l.r.consumeWhile(isNotBackQuote) {
			l.buf.WriteString(l.r.captured())
		}
		if !l.r.consumeIf('`') {
			return "", l.errorf(errors.UnterminatedString, start, "unterminated string")
		}
		// A doubled backtick stands for one literal backtick.
		if !l.r.consumeIf('`') {
			return l.buf.String(), nil
		}
		l.buf.WriteByte('`')
	}
}

func (l *Lexer) readHex(n int) (rune, error) {
	var val rune
	for range n {
		d, ok := hexValue(l.r.ch)
		if l.r.eof || !ok {
			return 0, l.errorf(errors.InvalidHexDigits, l.r.pos, "invalid hex digits, expected %d", n)
		}
		val = val*16 + d
		l.r.next()
	}
	return val, nil
}

func (l *Lexer) errorf(kind errors.ErrorKind, offset int, format string, args ...any) error {
	return errors.New(kind, l.src, offset, format, args...)
}

// IsReserved reports whether c must be quoted inside a name or value.
func IsReserved(c byte) bool {
	return strings.IndexByte(Reserved, c) >= 0
}

func isBare(c byte) bool         { return !IsReserved(c) }
func isTab(c byte) bool          { return c == '\t' }
func isBlank(c byte) bool        { return c == ' ' || c == '\t' }
func isNotLineEnd(c byte) bool   { return c != '\r' && c != '\n' }
func isNotBackQuote(c byte) bool { return c != '`' }

func hexValue(c byte) (rune, bool) {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0'), true
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return rune(c-'A') + 10, true
	}
	return 0, false
}

func unescape(c byte) (byte, bool) {
	switch c {
	case '0':
		return 0, true
	case '\'':
		return '\'', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 'v':
		return '\v', true
	case 't':
		return '\t', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	}
	return 0, false
}

package lexer_test

import (
	stderrors "errors"
	"testing"

	"github.com/KimNorgaard/go-uni/errors"
	"github.com/KimNorgaard/go-uni/internal/lexer"
	"github.com/KimNorgaard/go-uni/internal/token"
	"github.com/stretchr/testify/require"
)

type expectedToken struct {
	typ     token.Type
	literal string
	depth   int
}

func collect(t *testing.T, input string) []expectedToken {
	t.Helper()
	l := lexer.New([]byte(input))
	var out []expectedToken
	for range 1000 {
		tok, err := l.NextToken()
		require.NoError(t, err)
		out = append(out, expectedToken{tok.Type, tok.Literal, tok.Depth})
		if tok.Type == token.EOF {
			return out
		}
	}
	t.Fatal("lexer did not reach EOF")
	return nil
}

func TestNextToken(t *testing.T) {
	input := "# header comment\r\n" +
		"root name='a\\tb' flag\r\n" +
		"\t~ list=(x `y z` ')') # trailing\n" +
		"\n" +
		"\t\t \r" +
		"\tchild=1\n"

	expected := []expectedToken{
		{token.INDENT, "", 0},
		{token.NAME, "root", 0},
		{token.NAME, "name", 0},
		{token.EQUALS, "", 0},
		{token.NAME, "a\tb", 0},
		{token.NAME, "flag", 0},
		{token.INDENT, "", 1},
		{token.TILDE, "", 0},
		{token.NAME, "list", 0},
		{token.EQUALS, "", 0},
		{token.LPAREN, "", 0},
		{token.NAME, "x", 0},
		{token.NAME, "y z", 0},
		{token.NAME, ")", 0},
		{token.RPAREN, "", 0},
		{token.INDENT, "", 1},
		{token.NAME, "child", 0},
		{token.EQUALS, "", 0},
		{token.NAME, "1", 0},
		{token.EOF, "", 0},
	}

	require.Equal(t, expected, collect(t, input))
}

func TestIndentationDepth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []expectedToken
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []expectedToken{{token.EOF, "", 0}},
		},
		{
			name:     "only blank and comment lines",
			input:    "\n\t\t\n  # note\r\n#",
			expected: []expectedToken{{token.EOF, "", 0}},
		},
		{
			name:  "spaces after tabs do not count",
			input: "\t  \ta",
			expected: []expectedToken{
				{token.INDENT, "", 1},
				{token.NAME, "a", 0},
				{token.EOF, "", 0},
			},
		},
		{
			name:  "leading spaces give depth zero",
			input: "  a",
			expected: []expectedToken{
				{token.INDENT, "", 0},
				{token.NAME, "a", 0},
				{token.EOF, "", 0},
			},
		},
		{
			name:     "trailing filler at end of input",
			input:    "\t\t  ",
			expected: []expectedToken{{token.EOF, "", 0}},
		},
		{
			name:  "mixed terminators",
			input: "a\rb\nc\r\n\td",
			expected: []expectedToken{
				{token.INDENT, "", 0},
				{token.NAME, "a", 0},
				{token.INDENT, "", 0},
				{token.NAME, "b", 0},
				{token.INDENT, "", 0},
				{token.NAME, "c", 0},
				{token.INDENT, "", 1},
				{token.NAME, "d", 0},
				{token.EOF, "", 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, collect(t, tt.input))
		})
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`''`, ""},
		{`'\''`, "'"},
		{`'\\'`, `\`},
		{`'\0'`, "\x00"},
		{`'\n\r\v\t\b\f'`, "\n\r\v\t\b\f"},
		{`'\x41\x42'`, "AB"},
		{`'\xe9'`, "é"},
		{`'étÉ'`, "étÉ"},
		{`'a b = ( ) ~ # ` + "`" + `'`, "a b = ( ) ~ # `"},
		{"'line\nbreak'", "line\nbreak"},
		{"``", ""},
		{"`a b`", "a b"},
		{"`a``b`", "a`b"},
		{"````", "`"},
		{"`it's`", "it's"},
		{"`\\n`", `\n`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := lexer.New([]byte("a=" + tt.input))
			for _, typ := range []token.Type{token.INDENT, token.NAME, token.EQUALS} {
				tok, err := l.NextToken()
				require.NoError(t, err)
				require.Equal(t, typ, tok.Type)
			}
			tok, err := l.NextToken()
			require.NoError(t, err)
			require.Equal(t, token.NAME, tok.Type)
			require.Equal(t, tt.expected, tok.Literal)

			tok, err = l.NextToken()
			require.NoError(t, err)
			require.Equal(t, token.EOF, tok.Type)
		})
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   errors.ErrorKind
		line   int
		column int
	}{
		{"unterminated single quote", "'abc", errors.UnterminatedString, 1, 1},
		{"unterminated after escape", `a='abc\`, errors.UnterminatedString, 1, 3},
		{"unterminated back quote", "a\n\tb=`abc", errors.UnterminatedString, 2, 4},
		{"unterminated after doubled back quote", "`abc``", errors.UnterminatedString, 1, 1},
		{"invalid escape", `'a\qc'`, errors.InvalidEscapeSequence, 1, 3},
		{"invalid hex digit", `'\x4g'`, errors.InvalidHexDigits, 1, 5},
		{"short unicode escape", `'\u12'`, errors.InvalidHexDigits, 1, 6},
		{"hex escape at end of input", `'\x`, errors.InvalidHexDigits, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New([]byte(tt.input))
			var err error
			for range 100 {
				var tok token.Token
				tok, err = l.NextToken()
				if err != nil || tok.Type == token.EOF {
					break
				}
			}
			require.Error(t, err)
			require.True(t, stderrors.Is(err, tt.kind), "got %v", err)

			var pe *errors.ParseError
			require.True(t, stderrors.As(err, &pe))
			require.Equal(t, tt.line, pe.Line)
			require.Equal(t, tt.column, pe.Column)
		})
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := lexer.New([]byte("a"))
	for range 2 {
		_, err := l.NextToken()
		require.NoError(t, err)
	}
	for range 3 {
		tok, err := l.NextToken()
		require.NoError(t, err)
		require.Equal(t, token.EOF, tok.Type)
	}
}

func TestIsReserved(t *testing.T) {
	for _, c := range []byte(lexer.Reserved) {
		require.True(t, lexer.IsReserved(c), "%q", c)
	}
	for _, c := range []byte("abcXYZ019-_./\\\"") {
		require.False(t, lexer.IsReserved(c), "%q", c)
	}
}

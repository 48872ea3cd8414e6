package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		input    Token
		expected string
	}{
		{Token{Type: INDENT, Depth: 2}, "INDENT(2)"},
		{Token{Type: NAME, Literal: "a b"}, `NAME("a b")`},
		{Token{Type: EQUALS}, "="},
		{Token{Type: EOF}, "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.input.String())
		})
	}
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "end of input", Describe(EOF))
	require.Equal(t, "name or value", Describe(NAME))
	require.Equal(t, "')'", Describe(RPAREN))
}

package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		offset   int
		expected Context
	}{
		{"single line", "abc", 1, Context{Line: 0, LineStart: 0, LineEnd: 3, Offset: 1}},
		{"end of input", "abc", 3, Context{Line: 0, LineStart: 0, LineEnd: 3, Offset: 3}},
		{"past end is clamped", "abc", 10, Context{Line: 0, LineStart: 0, LineEnd: 3, Offset: 3}},
		{"second line after LF", "ab\ncd", 4, Context{Line: 1, LineStart: 3, LineEnd: 5, Offset: 4}},
		{"second line after CR", "ab\rcd", 3, Context{Line: 1, LineStart: 3, LineEnd: 5, Offset: 3}},
		{"CRLF is one terminator", "ab\r\ncd\r\nef", 8, Context{Line: 2, LineStart: 8, LineEnd: 10, Offset: 8}},
		{"offset on terminator", "ab\r\ncd", 3, Context{Line: 0, LineStart: 0, LineEnd: 2, Offset: 2}},
		{"LFCR is two terminators", "ab\n\rcd", 4, Context{Line: 2, LineStart: 4, LineEnd: 6, Offset: 4}},
		{"empty input", "", 0, Context{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, At([]byte(tt.input), tt.offset))
		})
	}
}

func TestColumnAndExcerpt(t *testing.T) {
	src := []byte("root\n\tnäme='x")
	ctx := At(src, 12)
	require.Equal(t, 1, ctx.Line)
	require.Equal(t, 7, ctx.Column(src))
	require.Equal(t, "\tnäme='x", ctx.Text(src))
	require.Equal(t, "\tnäme="+Marker+"'x", ctx.Excerpt(src))
}

package token

import "fmt"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string // decoded text of a NAME token
	Depth   int    // leading tab count of an INDENT token
	Offset  int    // byte offset of the first character of the token
}

const (
	EOF Type = "EOF" // End of input

	INDENT Type = "INDENT" // start of a content line
	NAME   Type = "NAME"   // bareword or quoted name/value

	// Delimiters
	EQUALS Type = "="
	TILDE  Type = "~"
	LPAREN Type = "("
	RPAREN Type = ")"
)

func (t Token) String() string {
	switch t.Type {
	case INDENT:
		return fmt.Sprintf("INDENT(%d)", t.Depth)
	case NAME:
		return fmt.Sprintf("NAME(%q)", t.Literal)
	}
	return string(t.Type)
}

// Describe returns the human readable name of a token type, as used in
// error messages.
func Describe(t Type) string {
	switch t {
	case EOF:
		return "end of input"
	case INDENT:
		return "indentation"
	case NAME:
		return "name or value"
	}
	return "'" + string(t) + "'"
}

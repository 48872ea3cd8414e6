/*
Package uni reads and writes UNI, a compact, indentation-sensitive text
format for trees of attributed elements.

Each content line of a UNI document is one element. The line holds an
ordered list of attributes: a bare name (a flag), name=value, or
name=(a list of values). Nesting is expressed only by the number of
leading tab characters; a child sits exactly one tab deeper than its
parent.

	window title=`Main window`
		panel id=top layout=(row wrap)
			button id=ok default
		panel id=bottom
			~ hidden      # continuation: one more attribute for the panel

Names and values containing a space, tab, line break, one of ( ) = ~ #,
a backtick or a single quote must be quoted, either with backticks (a
doubled backtick stands for one) or with single quotes, which support
backslash escapes such as \n, \t, \xHH and \uHHHH. A # outside quotes
starts a comment that runs to the end of the line.

Parsing and writing:

	doc, err := uni.Parse(data)
	if err != nil {
		// err is an *errors.ParseError with line, column and an excerpt
	}
	out := uni.Marshal(doc) // canonical text, CRLF line breaks

The parser is purely syntactic. It does not interpret attribute names and
does not validate documents against a schema.
*/
package uni

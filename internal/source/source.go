// Package source maps byte offsets in a UNI document back to the line that
// contains them, for use in diagnostics.
package source

import "unicode/utf8"

// Marker is inserted into an excerpt at the reported position.
const Marker = "👉"

// Context describes the line enclosing an offset.
type Context struct {
	Line      int // 0-based line number
	LineStart int // offset of the first byte of the line
	LineEnd   int // offset of the line terminator, or len(src)
	Offset    int // requested offset, clamped to [LineStart, LineEnd]
}

// At scans src from the start and returns the context of the line holding
// offset. CR, LF and CRLF each terminate exactly one line.
func At(src []byte, offset int) Context {
	line, lineStart := 0, 0
	i := 0
	for i < len(src) {
		c := src[i]
		if c != '\r' && c != '\n' {
			i++
			continue
		}
		lineEnd := i
		i++
		if c == '\r' && i < len(src) && src[i] == '\n' {
			i++
		}
		if offset < i {
			return newContext(line, lineStart, lineEnd, offset)
		}
		lineStart = i
		line++
	}
	return newContext(line, lineStart, len(src), offset)
}

func newContext(line, start, end, offset int) Context {
	return Context{
		Line:      line,
		LineStart: start,
		LineEnd:   end,
		Offset:    max(start, min(offset, end)),
	}
}

// Column returns the 1-based column of the offset, counted in runes.
func (c Context) Column(src []byte) int {
	return utf8.RuneCount(src[c.LineStart:c.Offset]) + 1
}

// Text returns the line without its terminator.
func (c Context) Text(src []byte) string {
	return string(src[c.LineStart:c.LineEnd])
}

// Excerpt returns the line text with Marker inserted at the offset.
func (c Context) Excerpt(src []byte) string {
	return string(src[c.LineStart:c.Offset]) + Marker + string(src[c.Offset:c.LineEnd])
}

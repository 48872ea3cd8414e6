package lexer

// reader scans a source buffer one byte at a time with a single byte of
// lookahead. All reserved characters are ASCII, so multi-byte UTF-8
// sequences pass through the predicates untouched.
type reader struct {
	src []byte
	pos int // offset of ch
	ch  byte
	eof bool

	capStart int
	capEnd   int
}

func newReader(src []byte) *reader {
	r := &reader{src: src}
	r.load()
	return r
}

func (r *reader) load() {
	if r.pos >= len(r.src) {
		r.pos = len(r.src)
		r.ch = 0
		r.eof = true
		return
	}
	r.ch = r.src[r.pos]
}

func (r *reader) next() {
	if r.eof {
		return
	}
	r.pos++
	r.load()
}

// is reports whether the current character is ch.
func (r *reader) is(ch byte) bool {
	return !r.eof && r.ch == ch
}

// consumeIf advances past the current character if it equals ch.
func (r *reader) consumeIf(ch byte) bool {
	if !r.is(ch) {
		return false
	}
	r.next()
	return true
}

// consumeWhile advances past the longest run of characters satisfying
// pred. An empty run returns false and leaves the last capture intact.
func (r *reader) consumeWhile(pred func(byte) bool) bool {
	start := r.pos
	for !r.eof && pred(r.ch) {
		r.next()
	}
	if r.pos == start {
		return false
	}
	r.capStart, r.capEnd = start, r.pos
	return true
}

// captured returns the most recent non-empty run matched by consumeWhile.
func (r *reader) captured() string {
	return string(r.src[r.capStart:r.capEnd])
}

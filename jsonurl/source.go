package jsonurl

import "github.com/jsonurl/jsonurl-go/jsonurl/internal/lex"

// source buffers a CharIterator into a contiguous []byte so the lexer
// (which operates on slice spans, not one character at a time) can scan
// ahead. It never buffers past maxLen+1 bytes: anything beyond that is
// already a guaranteed maxParseChars violation, so there is no reason to
// hold it in memory.
type source struct {
	it     CharIterator
	buf    []byte
	maxLen int
	eof    bool
}

func newSource(it CharIterator, maxLen int) *source {
	return &source{it: it, maxLen: maxLen}
}

// ensure grows buf until it has at least n bytes, hits EOF, or reaches the
// maxLen+1 cap, and returns the (possibly shorter) buffer.
func (s *source) ensure(n int) []byte {
	capN := s.maxLen + 1
	if n > capN {
		n = capN
	}

	for !s.eof && len(s.buf) < n {
		c := s.it.NextChar()
		if c == EOF {
			s.eof = true

			break
		}

		s.buf = append(s.buf, byte(c))
	}

	return s.buf
}

// byteAt returns the byte at index i (ensuring enough has been buffered)
// and whether it exists.
func (s *source) byteAt(i int) (byte, bool) {
	buf := s.ensure(i + 1)
	if i < len(buf) {
		return buf[i], true
	}

	return 0, false
}

// literalLength delegates to lex.ParseLiteralLength over the full
// available window, which for a buffered source is exactly the right
// notion of "stop": either true end-of-input or the maxLen+1 cap (beyond
// which parsing is already doomed to hit a limit error).
func (s *source) literalLength(start int, wfuActive bool) (int, error) {
	buf := s.ensure(s.maxLen + 1)

	return lex.ParseLiteralLength(buf, start, len(buf), wfuActive)
}

// slice returns the buffered window [start:stop), ensuring stop bytes are
// available first.
func (s *source) slice(start, stop int) []byte {
	buf := s.ensure(stop)

	return buf[start:min(stop, len(buf))]
}

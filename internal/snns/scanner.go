package snns

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxFoundLen = 24

// scanner walks the pattern file text. Comments run from '#' to the end of
// the line and count as whitespace everywhere.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case isSpace(c):
			s.pos++
		case c == '#':
			if i := strings.IndexByte(s.src[s.pos:], '\n'); i >= 0 {
				s.pos += i
			} else {
				s.pos = len(s.src)
			}
		default:
			return
		}
	}
}

// literal consumes lit after any leading whitespace.
func (s *scanner) literal(lit string) error {
	s.skipSpace()
	if !strings.HasPrefix(s.src[s.pos:], lit) {
		return s.errorf(strconv.Quote(lit))
	}
	s.pos += len(lit)
	return nil
}

// version consumes a token of the form V<int>.<int> (case-insensitive V).
func (s *scanner) version() (string, error) {
	s.skipSpace()
	start := s.pos
	if s.eof() || (s.src[s.pos] != 'V' && s.src[s.pos] != 'v') {
		return "", s.errorf("version token like V3.2")
	}
	p := start + 1
	major := digitsAt(s.src, p)
	if major == 0 {
		return "", s.errorf("version token like V3.2")
	}
	p += major
	if p >= len(s.src) || s.src[p] != '.' {
		return "", s.errorf("version token like V3.2")
	}
	p++
	minor := digitsAt(s.src, p)
	if minor == 0 {
		return "", s.errorf("version token like V3.2")
	}
	p += minor
	s.pos = p
	return s.src[start:p], nil
}

// restOfLine returns the trimmed text up to the end of the current line
// and leaves the scanner on the newline.
func (s *scanner) restOfLine() string {
	end := len(s.src)
	if i := strings.IndexByte(s.src[s.pos:], '\n'); i >= 0 {
		end = s.pos + i
	}
	text := strings.TrimSpace(s.src[s.pos:end])
	s.pos = end
	return text
}

// count consumes an unsigned decimal integer.
func (s *scanner) count(what string) (int, error) {
	s.skipSpace()
	n := digitsAt(s.src, s.pos)
	if n == 0 || !s.boundaryAt(s.pos+n) {
		return 0, s.errorf(what)
	}
	v, err := strconv.Atoi(s.src[s.pos : s.pos+n])
	if err != nil {
		return 0, s.errorf(what)
	}
	s.pos += n
	return v, nil
}

// number consumes one numeric token: [+-]? (INT '.' INT | '.' INT | INT).
// The caller must have skipped whitespace.
func (s *scanner) number() (string, error) {
	start := s.pos
	p := start
	if p < len(s.src) && (s.src[p] == '+' || s.src[p] == '-') {
		p++
	}
	whole := digitsAt(s.src, p)
	p += whole
	if p < len(s.src) && s.src[p] == '.' {
		frac := digitsAt(s.src, p+1)
		if frac == 0 {
			return "", s.errorf("numeric value")
		}
		p += 1 + frac
	} else if whole == 0 {
		return "", s.errorf("numeric value")
	}
	if !s.boundaryAt(p) {
		return "", s.errorf("numeric value")
	}
	s.pos = p
	return s.src[start:p], nil
}

func (s *scanner) boundaryAt(p int) bool {
	return p >= len(s.src) || isSpace(s.src[p]) || s.src[p] == '#'
}

// errorf builds a ParseError positioned at the scanner's current offset.
func (s *scanner) errorf(expected string) *ParseError {
	line := 1 + strings.Count(s.src[:s.pos], "\n")
	lineStart := strings.LastIndexByte(s.src[:s.pos], '\n') + 1
	return &ParseError{
		Line:     line,
		Column:   utf8.RuneCountInString(s.src[lineStart:s.pos]) + 1,
		Expected: expected,
		Found:    s.found(),
	}
}

func (s *scanner) found() string {
	if s.eof() {
		return "end of input"
	}
	rest := s.src[s.pos:]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r < utf8.RuneSelf && isSpace(byte(r))
	})
	if end < 0 {
		end = len(rest)
	}
	tok := rest[:end]
	if len(tok) > maxFoundLen {
		tok = tok[:maxFoundLen] + "..."
	}
	return strconv.Quote(tok)
}

func digitsAt(src string, p int) int {
	n := 0
	for p+n < len(src) && src[p+n] >= '0' && src[p+n] <= '9' {
		n++
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

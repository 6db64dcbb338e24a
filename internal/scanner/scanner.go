// Package scanner implements the low-level mechanics of reading header
// values: a byte cursor over the input with helpers for skipping optional
// whitespace and consuming the two primitives of the grammar, tokens and
// quoted-strings. The packages that expose the public API are built on top
// of this; nothing here knows about list items or parameters.
package scanner

import (
	"errors"
	"strings"
)

// Errors returned while consuming a quoted-string.
var (
	// ErrUnterminatedString is returned by QuotedString when the input ends
	// before the closing double-quote is found.
	ErrUnterminatedString = errors.New("unterminated quoted-string")

	// ErrInvalidEscape is returned by QuotedString when the input ends
	// immediately after a backslash, leaving the escape with nothing to
	// escape.
	ErrInvalidEscape = errors.New("quoted-string ends in a dangling escape")
)

// Class describes how a byte may appear in a header value.
type Class int

// The byte classes of the grammar. Every byte belongs to exactly one.
const (
	// Token bytes may appear bare, outside any quoting. This is printable
	// ASCII minus the delimiters the grammar itself assigns meaning to.
	Token Class = iota

	// Delim bytes are the grammar's own separators: '"', ',', ';' and '='.
	// They may appear inside a quoted-string ('"' only when escaped).
	Delim

	// Space bytes are the OWS characters, space and horizontal tab. Legal
	// between grammar elements and inside a quoted-string.
	Space

	// Obs bytes are 0x80..0xFF. They are accepted inside a quoted-string
	// (obs-text) and nowhere else.
	Obs

	// Control bytes are ASCII controls other than HTAB, including DEL.
	// Illegal everywhere; a value containing one cannot be serialized.
	Control
)

var byteClass [256]Class

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case b == ' ' || b == '\t':
			byteClass[b] = Space
		case b < 0x20 || b == 0x7F:
			byteClass[b] = Control
		case b >= 0x80:
			byteClass[b] = Obs
		case b == '"' || b == ',' || b == ';' || b == '=':
			byteClass[b] = Delim
		default:
			byteClass[b] = Token
		}
	}
}

// Classify returns the class of b.
func Classify(b byte) Class {
	return byteClass[b]
}

// IsTokenByte reports whether b may appear in a bare token.
func IsTokenByte(b byte) bool {
	return byteClass[b] == Token
}

// IsToken reports whether s is a legal bare token: non-empty and made
// entirely of token bytes.
func IsToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if byteClass[s[i]] != Token {
			return false
		}
	}
	return s != ""
}

// IsQuotable reports whether every byte of s may be carried inside a
// quoted-string, escaping aside. Only control bytes are excluded; they
// have no representation in this grammar at all.
func IsQuotable(s string) bool {
	for i := 0; i < len(s); i++ {
		if byteClass[s[i]] == Control {
			return false
		}
	}
	return true
}

// Scanner is a cursor over a single header value. It never backtracks;
// every consuming method either advances the cursor or leaves it at the
// end of input.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos returns the current byte offset into the input.
func (s *Scanner) Pos() int {
	return s.pos
}

// More reports whether any input remains.
func (s *Scanner) More() bool {
	return s.pos < len(s.input)
}

// Peek returns the byte at the cursor without consuming it, or 0 at end
// of input. The grammar assigns no meaning to NUL, so the sentinel is
// unambiguous in practice (a real NUL classifies as Control either way).
func (s *Scanner) Peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

// Skip consumes a single byte.
func (s *Scanner) Skip() {
	if s.pos < len(s.input) {
		s.pos++
	}
}

// SkipOWS consumes any run of space and horizontal tab bytes.
func (s *Scanner) SkipOWS() {
	for s.pos < len(s.input) && byteClass[s.input[s.pos]] == Space {
		s.pos++
	}
}

// Token consumes and returns the maximal run of token bytes at the
// cursor. The run may be empty, in which case the cursor does not move.
func (s *Scanner) Token() string {
	start := s.pos
	for s.pos < len(s.input) && byteClass[s.input[s.pos]] == Token {
		s.pos++
	}
	return s.input[start:s.pos]
}

// QuotedString consumes a quoted-string whose opening double-quote is at
// the cursor, and returns its decoded content: the delimiting quotes are
// stripped and each backslash escape is replaced by the escaped byte.
//
// On malformed input the decoded content read so far is still returned
// alongside the error, with the cursor left at end of input, so callers
// that collect errors rather than fail can adopt it as-is:
//
//   - ErrUnterminatedString when the closing quote is missing; the content
//     is decoded as though the string were closed at end of input.
//   - ErrInvalidEscape when the input ends right after a backslash; the
//     dangling backslash is dropped from the content.
func (s *Scanner) QuotedString() (string, error) {
	// caller guarantees the opening quote
	s.pos++

	var b strings.Builder
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		switch c {
		case '"':
			s.pos++
			return b.String(), nil
		case '\\':
			if s.pos+1 >= len(s.input) {
				s.pos = len(s.input)
				return b.String(), ErrInvalidEscape
			}
			s.pos++
			b.WriteByte(s.input[s.pos])
			s.pos++
		default:
			b.WriteByte(c)
			s.pos++
		}
	}
	return b.String(), ErrUnterminatedString
}

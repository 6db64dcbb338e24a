package value

import (
	"errors"
	"fmt"

	"github.com/zostay/go-headerval/internal/scanner"
)

// Errors describing the ways a header value can be malformed. Parse wraps
// one of these in a *SyntaxError; Validate reports them as Issue kinds.
var (
	// ErrUnterminatedQuote is reported when a quoted-string is still open
	// at the end of input.
	ErrUnterminatedQuote = scanner.ErrUnterminatedString

	// ErrInvalidEscape is reported when the input ends immediately after a
	// backslash inside a quoted-string.
	ErrInvalidEscape = scanner.ErrInvalidEscape

	// ErrIllegalCharacter is reported when a byte appears somewhere the
	// grammar cannot accept it: a control character anywhere outside a
	// quoted escape, a non-ASCII byte outside a quoted-string, or a stray
	// double-quote in the middle of a token. Build also returns it when
	// asked to serialize text containing a byte that has no representation
	// even inside a quoted-string.
	ErrIllegalCharacter = errors.New("illegal character")

	// ErrMissingParamEquals is reported when a parameter name is not
	// followed by '='.
	ErrMissingParamEquals = errors.New("missing '=' after parameter name")

	// ErrMissingParamValue is reported when nothing parseable follows a
	// parameter's '='.
	ErrMissingParamValue = errors.New("missing value after '='")

	// ErrUnexpectedSeparator is reported when a separator appears where it
	// cannot: a ';' with no parameter after it, a '=' outside a parameter,
	// or anything other than ',' between two list items.
	ErrUnexpectedSeparator = errors.New("unexpected separator")

	// ErrDuplicateParamKey is reported by Validate, as a warning, when an
	// item carries the same parameter name twice. It is never fatal: both
	// Parse and Validate keep the first occurrence and drop the rest.
	ErrDuplicateParamKey = errors.New("duplicate parameter name")
)

// SyntaxError is the error type returned by Parse (and by Normalize, which
// parses). It wraps one of the sentinel errors above together with the
// byte offset at which the problem was found, so errors.Is can test for
// the specific failure.
type SyntaxError struct {
	// Offset is the byte position in the input at which the error was
	// detected. For an unterminated quoted-string this is the position of
	// the opening quote.
	Offset int

	// Err is the sentinel describing what went wrong.
	Err error
}

// Error returns the failure description with its position.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

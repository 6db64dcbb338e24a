package value

import (
	"errors"
	"fmt"

	"github.com/zostay/go-headerval/internal/scanner"
)

// IssueKind classifies a problem found by Validate.
type IssueKind int

// The kinds of problem Validate can report.
const (
	UnterminatedQuote IssueKind = iota
	InvalidEscape
	IllegalCharacter
	MissingParamEquals
	MissingParamValue
	UnexpectedSeparator
	DuplicateParamKey
)

var issueKindNames = map[IssueKind]string{
	UnterminatedQuote:   "unterminated-quote",
	InvalidEscape:       "invalid-escape",
	IllegalCharacter:    "illegal-character",
	MissingParamEquals:  "missing-param-equals",
	MissingParamValue:   "missing-param-value",
	UnexpectedSeparator: "unexpected-separator",
	DuplicateParamKey:   "duplicate-param-key",
}

// String returns a stable name for the kind.
func (k IssueKind) String() string {
	if name, ok := issueKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("issue(%d)", int(k))
}

// Issue is one problem found in a header value: what kind of problem,
// where, and a human-readable description.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Offset  int       `json:"offset"`
	Message string    `json:"message"`
}

// String formats the issue for diagnostic output.
func (i Issue) String() string {
	return fmt.Sprintf("offset %d: %s: %s", i.Offset, i.Kind, i.Message)
}

// Error makes an Issue usable as an error value.
func (i Issue) Error() string {
	return i.String()
}

// Result is the outcome of Validate. Valid is true exactly when Errors is
// empty; Warnings (currently only duplicate parameter names) never make a
// value invalid.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// Validate scans an entire header value and reports every problem found,
// in input order. Unlike Parse it never gives up at the first error:
// after recording an issue the scan recovers, usually by resynchronizing
// at the next comma, and keeps looking. A single bad value can therefore
// yield several issues in one pass.
//
// The recovery rules are fixed: an unterminated quoted-string is read as
// though closed at end of input, a dangling backslash is dropped, and
// junk between items is skipped up to the next comma.
func Validate(text string) Result {
	p := &parser{sc: scanner.New(text), collecting: true}

	// collecting mode never returns an error
	_, _ = p.run()

	return Result{
		Valid:    len(p.errs) == 0,
		Errors:   p.errs,
		Warnings: p.warns,
	}
}

func (p *parser) report(off int, sentinel error, msg string) {
	p.errs = append(p.errs, Issue{Kind: kindOf(sentinel), Offset: off, Message: msg})
}

func (p *parser) warn(off int, sentinel error, msg string) {
	p.warns = append(p.warns, Issue{Kind: kindOf(sentinel), Offset: off, Message: msg})
}

func kindOf(sentinel error) IssueKind {
	switch {
	case errors.Is(sentinel, ErrUnterminatedQuote):
		return UnterminatedQuote
	case errors.Is(sentinel, ErrInvalidEscape):
		return InvalidEscape
	case errors.Is(sentinel, ErrMissingParamEquals):
		return MissingParamEquals
	case errors.Is(sentinel, ErrMissingParamValue):
		return MissingParamValue
	case errors.Is(sentinel, ErrUnexpectedSeparator):
		return UnexpectedSeparator
	case errors.Is(sentinel, ErrDuplicateParamKey):
		return DuplicateParamKey
	default:
		return IllegalCharacter
	}
}

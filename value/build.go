package value

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zostay/go-headerval/internal/scanner"
)

// BuildOption refers to options that may be passed to Build to modify how
// serialization works.
type BuildOption func(b *builder)

// SortParams is a BuildOption that emits each item's parameters in sorted
// name order instead of insertion order.
func SortParams() BuildOption {
	return func(b *builder) { b.sortParams = true }
}

// MinimalQuoting is a BuildOption that emits parameter values as bare
// tokens whenever they are legal tokens. By default parameter values are
// always quoted, which is the safer output for consumers of unknown
// strictness; primary values are never quoted unnecessarily either way.
func MinimalQuoting() BuildOption {
	return func(b *builder) { b.forceQuote = false }
}

type builder struct {
	sortParams bool
	forceQuote bool
}

// Build serializes items into a header value, the inverse of Parse. Items
// are joined with ", " and parameters appended as "; name=value". Each
// value is emitted as a bare token when it can be and as a quoted-string
// (with '"' and '\' backslash-escaped) when it cannot; an empty value is
// emitted as "".
//
// Build does not require that items came from Parse. It fails only when a
// value cannot be represented in the grammar at all: parameter names must
// be legal tokens, since the grammar has no quoted form for them, and no
// value may contain a control character. The returned error wraps
// ErrIllegalCharacter.
//
// Building the result of Parse re-parses to the same items: whitespace
// and quoting style may change, the meaning does not.
func Build(items []Item, opts ...BuildOption) (string, error) {
	b := &builder{forceQuote: true}
	for _, opt := range opts {
		opt(b)
	}

	var out strings.Builder
	for i, it := range items {
		if i > 0 {
			out.WriteString(", ")
		}
		if err := writeValue(&out, it.Value, false); err != nil {
			return "", fmt.Errorf("item %d: %w", i, err)
		}

		keys := it.Params.Keys()
		if b.sortParams {
			sort.Strings(keys)
		}
		for _, k := range keys {
			if !scanner.IsToken(k) {
				return "", fmt.Errorf("item %d: parameter name %q: %w", i, k, ErrIllegalCharacter)
			}
			out.WriteString("; ")
			out.WriteString(k)
			out.WriteByte('=')
			if err := writeValue(&out, it.Params.Get(k), b.forceQuote); err != nil {
				return "", fmt.Errorf("item %d: parameter %q: %w", i, k, err)
			}
		}
	}
	return out.String(), nil
}

// EscapeToken returns tok unchanged when it is already a legal bare token,
// and otherwise returns it wrapped in a quoted-string with '"' and '\'
// escaped. It does not check representability: a string holding a control
// character still comes back quoted, and only Build rejects it.
func EscapeToken(tok string) string {
	if scanner.IsToken(tok) {
		return tok
	}
	var out strings.Builder
	writeQuoted(&out, tok)
	return out.String()
}

func writeValue(out *strings.Builder, s string, forceQuote bool) error {
	if !forceQuote && scanner.IsToken(s) {
		out.WriteString(s)
		return nil
	}
	if !scanner.IsQuotable(s) {
		return fmt.Errorf("%q cannot appear even in a quoted-string: %w", s, ErrIllegalCharacter)
	}
	writeQuoted(out, s)
	return nil
}

func writeQuoted(out *strings.Builder, s string) {
	out.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			out.WriteByte('\\')
		}
		out.WriteByte(c)
	}
	out.WriteByte('"')
}

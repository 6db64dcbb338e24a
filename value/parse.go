package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-headerval/internal/scanner"
)

// ParseOption refers to options that may be passed to Parse to modify how
// the parser works.
type ParseOption func(p *parser)

// AllowEmptyItems is a ParseOption that keeps the zero-length items
// produced by consecutive or trailing commas, as empty-valued Items. By
// default such positions are dropped, following RFC 7230 Section 7:
// "Empty elements do not contribute to the count of elements present."
//
// This option also permits an item whose value is empty but which carries
// parameters, as in ";q=1". Without it, that input is a syntax error.
func AllowEmptyItems() ParseOption {
	return func(p *parser) { p.allowEmpty = true }
}

// PreserveParamCase is a ParseOption that keeps parameter names exactly as
// written. By default names are folded to lowercase, since HTTP parameter
// names compare case-insensitively.
func PreserveParamCase() ParseOption {
	return func(p *parser) { p.preserveCase = true }
}

// Parse reads a header value in the comma-separated parameterized grammar
// and returns its items in order. Quoting and escaping are decoded; the
// returned values and parameters hold plain text.
//
// Parse fails fast: the first syntax error aborts the whole parse and is
// returned as a *SyntaxError identifying the byte offset of the problem.
// There are no partial results; use Validate to survey everything wrong
// with a value at once.
//
// Empty input, or input containing only whitespace, parses to zero items.
// A duplicate parameter name within an item is not a syntax error; the
// first occurrence wins and the rest are dropped.
func Parse(text string, opts ...ParseOption) ([]Item, error) {
	p := &parser{sc: scanner.New(text)}
	for _, opt := range opts {
		opt(p)
	}
	return p.run()
}

// parser holds the state of one parsing pass. The same machine serves
// Parse and Validate: in collecting mode failures are recorded as issues
// and the scan recovers and continues, otherwise the first failure aborts.
type parser struct {
	sc           *scanner.Scanner
	allowEmpty   bool
	preserveCase bool

	collecting bool
	errs       []Issue
	warns      []Issue
}

func (p *parser) run() ([]Item, error) {
	var items []Item
	sc := p.sc

	sc.SkipOWS()
	if !sc.More() {
		// an empty or all-whitespace value has no elements at all
		return nil, nil
	}

	for {
		sc.SkipOWS()
		it, keep, err := p.item()
		if err != nil {
			return nil, err
		}
		if keep {
			items = append(items, it)
		}

		sc.SkipOWS()
		if !sc.More() {
			return items, nil
		}
		if sc.Peek() == ',' {
			sc.Skip()
			continue
		}

		// something other than ',' between items
		off, c := sc.Pos(), sc.Peek()
		if !p.collecting {
			return nil, &SyntaxError{off, junkErr(c)}
		}
		p.report(off, junkErr(c), junkMessage(c, "expected ',' before the next item"))
		p.skipToComma()
		if !sc.More() {
			return items, nil
		}
		sc.Skip()
	}
}

// item reads one list element starting at the cursor. keep is false when
// the position turned out to be an empty element that the options say to
// drop, or when error recovery discarded the element.
func (p *parser) item() (Item, bool, error) {
	sc := p.sc
	var it Item
	var quoted bool

	if sc.Peek() == '"' {
		off := sc.Pos()
		v, err := sc.QuotedString()
		if err != nil {
			if !p.collecting {
				return it, false, &SyntaxError{off, err}
			}
			p.report(off, err, quoteMessage(err))
		}
		if err := p.checkQuotedContent(off, v); err != nil {
			return it, false, err
		}
		it.Value = v
		quoted = true
	} else {
		it.Value = sc.Token()
	}

	if it.Value == "" && !quoted {
		c := sc.Peek()
		switch {
		case !sc.More() || c == ',':
			// an empty list position from consecutive or trailing commas
			return it, p.allowEmpty, nil
		case c == ';':
			if !p.allowEmpty {
				if !p.collecting {
					return it, false, &SyntaxError{sc.Pos(), ErrUnexpectedSeparator}
				}
				p.report(sc.Pos(), ErrUnexpectedSeparator,
					"parameters attached to an empty value")
				err := p.params(&it)
				return it, false, err
			}
		default:
			// a byte that cannot begin a value: '=', a control, ...
			if !p.collecting {
				return it, false, &SyntaxError{sc.Pos(), junkErr(c)}
			}
			p.report(sc.Pos(), junkErr(c), junkMessage(c, "expected a token or quoted-string"))
			p.skipToComma()
			return it, false, nil
		}
	}

	if err := p.params(&it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

// params reads the ";"-introduced parameters of an item, if any, leaving
// the cursor on whatever follows them.
func (p *parser) params(it *Item) error {
	sc := p.sc
	sc.SkipOWS()
	for sc.Peek() == ';' {
		semi := sc.Pos()
		sc.Skip()
		sc.SkipOWS()

		c := sc.Peek()
		if !sc.More() || c == ',' {
			if !p.collecting {
				return &SyntaxError{semi, ErrUnexpectedSeparator}
			}
			p.report(semi, ErrUnexpectedSeparator, "';' with no parameter after it")
			return nil
		}

		keyOff := sc.Pos()
		var key string
		if c == '"' {
			// quoted parameter names are not part of the grammar
			if !p.collecting {
				return &SyntaxError{keyOff, ErrIllegalCharacter}
			}
			p.report(keyOff, ErrIllegalCharacter,
				"parameter name must be a bare token, not a quoted-string")
			k, err := sc.QuotedString()
			if err != nil {
				p.report(keyOff, err, quoteMessage(err))
			}
			key = k
		} else {
			key = sc.Token()
			if key == "" {
				if !p.collecting {
					return &SyntaxError{keyOff, junkErr(c)}
				}
				p.report(keyOff, junkErr(c), junkMessage(c, "expected a parameter name"))
				p.skipParam()
				sc.SkipOWS()
				continue
			}
		}
		if !p.preserveCase {
			key = strings.ToLower(key)
		}

		sc.SkipOWS()
		if sc.Peek() != '=' {
			if !p.collecting {
				return &SyntaxError{sc.Pos(), ErrMissingParamEquals}
			}
			p.report(sc.Pos(), ErrMissingParamEquals,
				fmt.Sprintf("missing '=' after parameter name %q", key))
			p.setParam(it, key, "", keyOff)
			sc.SkipOWS()
			continue
		}
		sc.Skip()
		sc.SkipOWS()

		var val string
		c = sc.Peek()
		if c == '"' {
			valOff := sc.Pos()
			v, err := sc.QuotedString()
			if err != nil {
				if !p.collecting {
					return &SyntaxError{valOff, err}
				}
				p.report(valOff, err, quoteMessage(err))
			}
			if err := p.checkQuotedContent(valOff, v); err != nil {
				return err
			}
			val = v
		} else {
			val = sc.Token()
			if val == "" {
				if !sc.More() || c == ',' || c == ';' {
					if !p.collecting {
						return &SyntaxError{sc.Pos(), ErrMissingParamValue}
					}
					p.report(sc.Pos(), ErrMissingParamValue,
						fmt.Sprintf("missing value for parameter %q", key))
				} else {
					if !p.collecting {
						return &SyntaxError{sc.Pos(), junkErr(c)}
					}
					p.report(sc.Pos(), junkErr(c),
						junkMessage(c, fmt.Sprintf("expected a value for parameter %q", key)))
					p.skipParam()
				}
			}
		}

		p.setParam(it, key, val, keyOff)
		sc.SkipOWS()
	}
	return nil
}

// setParam records a parsed parameter, keeping the first value when the
// name repeats. In collecting mode a repeat is surfaced as a warning.
func (p *parser) setParam(it *Item, key, val string, off int) {
	if _, ok := it.Params.Lookup(key); ok {
		if p.collecting {
			p.warn(off, ErrDuplicateParamKey,
				fmt.Sprintf("parameter %q appears more than once; first value kept", key))
		}
		return
	}
	it.Params.Set(key, val)
}

// checkQuotedContent rejects control characters smuggled into a
// quoted-string, whether bare or behind a backslash escape. Such bytes
// have no serialized form, so accepting them would produce items that
// Build must refuse. off is the offset of the opening quote.
func (p *parser) checkQuotedContent(off int, v string) error {
	for i := 0; i < len(v); i++ {
		if scanner.Classify(v[i]) == scanner.Control {
			if !p.collecting {
				return &SyntaxError{off, ErrIllegalCharacter}
			}
			p.report(off, ErrIllegalCharacter,
				fmt.Sprintf("quoted-string contains control character 0x%02x", v[i]))
			return nil
		}
	}
	return nil
}

// skipToComma advances to the next ',' or the end of input without
// interpreting what it skips. Once the scan has desynchronized inside an
// item, the list separator is the only reliable place to pick it back up.
func (p *parser) skipToComma() {
	for p.sc.More() && p.sc.Peek() != ',' {
		p.sc.Skip()
	}
}

// skipParam advances to the next parameter or item boundary.
func (p *parser) skipParam() {
	for p.sc.More() && p.sc.Peek() != ',' && p.sc.Peek() != ';' {
		p.sc.Skip()
	}
}

// junkErr picks the sentinel that describes finding byte c where the
// grammar wanted something else.
func junkErr(c byte) error {
	switch scanner.Classify(c) {
	case scanner.Control, scanner.Obs:
		return ErrIllegalCharacter
	case scanner.Delim:
		if c == '"' {
			return ErrIllegalCharacter
		}
		return ErrUnexpectedSeparator
	default:
		return ErrUnexpectedSeparator
	}
}

func junkMessage(c byte, context string) string {
	switch scanner.Classify(c) {
	case scanner.Control:
		return fmt.Sprintf("illegal control character 0x%02x; %s", c, context)
	case scanner.Obs:
		return fmt.Sprintf("non-ASCII byte 0x%02x outside quoted-string; %s", c, context)
	default:
		if c == '"' {
			return fmt.Sprintf(`stray '"'; %s`, context)
		}
		return fmt.Sprintf("unexpected %q; %s", string(c), context)
	}
}

func quoteMessage(err error) string {
	if errors.Is(err, ErrInvalidEscape) {
		return "quoted-string ends in a dangling escape"
	}
	return "quoted-string is never closed"
}

package value

// Normalize parses a header value and rebuilds it in canonical form:
// single ", " and "; " separators, no stray whitespace, lowercase
// parameter names, minimal quoting, parameters in their original order.
// Empty list positions are dropped.
//
// Normalize is idempotent: normalizing an already-normalized value
// changes nothing. It fails, with the *SyntaxError from Parse, when the
// input is malformed.
func Normalize(text string) (string, error) {
	items, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Build(items, MinimalQuoting())
}

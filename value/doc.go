// Package value parses and serializes HTTP header values that follow the
// common comma-separated, parameterized grammar shared by headers like
// Accept, Content-type and Cache-control:
//
//	text/html;q=0.9, application/json;q=0.8, */*;q=0.1
//
// A header value is a list of items. Each Item has a primary Value and an
// ordered set of key=value Params. Values and parameter values may be bare
// tokens or quoted-strings with backslash escaping; Parse decodes them and
// Build re-encodes them, so the rest of your program only ever sees the
// decoded text.
//
// Four operations cover the lifecycle:
//
//   - Parse turns header text into []Item and fails fast on the first
//     syntax error, reporting its byte offset.
//   - Build turns []Item back into header text, deciding per value whether
//     quoting is required.
//   - Normalize is Parse followed by Build with canonical settings and is
//     idempotent.
//   - Validate scans the whole input without ever failing and reports
//     every problem it finds, not just the first.
//
// The package assigns no meaning to particular headers. Picking the best
// Accept match, interpreting Cache-control directives and so on are jobs
// for the caller, working from the parsed items.
package value

// Package headerval is the root of a small library for working with HTTP
// header values that follow the comma-separated, parameterized grammar
// shared by headers like Accept, Content-type and Cache-control.
//
// All of the functionality lives in the value package: Parse breaks a
// header value into structured items, Build serializes items back out,
// Normalize rewrites a value in canonical form and Validate reports every
// syntax problem in a value at once. See the value package documentation
// for the details of the grammar and the error-handling policies.
//
// The hv command under cmd/hv exposes the same four operations on the
// command line, reading header values from arguments or standard input
// and exchanging parsed items as JSON.
//
// Everything here is purely functional: no call keeps state between
// invocations, and every function is safe for concurrent use.
package headerval

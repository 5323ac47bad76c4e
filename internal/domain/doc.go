// Package domain holds the shared value types of the hush protocol core.
//
// Key material lives in fixed-size array types to avoid accidental
// reallocations and to make sizes part of the type system. The Envelope is
// the only value that crosses the trust boundary; private keys, shared
// secrets and message keys never leave the process and are never
// serialised.
package domain

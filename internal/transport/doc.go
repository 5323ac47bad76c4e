// Package transport ships the reference transport collaborator: an
// in-process FIFO pipe and the JSON wire codec for envelopes.
//
// The protocol core only ever sees domain.Envelope values; the byte
// encoding on the wire belongs here, not to the core.
package transport

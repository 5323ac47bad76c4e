// Package session holds the per-endpoint protocol state machine and the
// two-party orchestrator built on top of it.
//
// An Endpoint walks Uninitialized -> KeysGenerated -> HandshakeComplete and
// never back. Send and Receive are refused with ErrNotReady until the
// handshake is done. A Session pairs two in-process endpoints, which is the
// demo topology; the envelopes it produces are self-contained and can just
// as well cross a real transport.
package session

// Package ratchet implements hush's forward-only sending ratchet.
//
// Each endpoint keeps a counter that starts at zero and moves forward one
// step per message sent. The key for a message is derived from the session's
// shared secret and that counter with HKDF-SHA256, so every message is
// encrypted under its own key and the counter value in the envelope is all
// a receiver needs to re-derive it.
//
// This is deliberately a single symmetric ratchet per sender, not the
// Double Ratchet: there is no DH step, no receive chain and no backward
// secrecy. Changing that would change the wire format.
package ratchet

package domain

// X25519Public is a Curve25519 public key, the half of a key pair that is
// handed to the peer.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private scalar. It is exclusively owned by
// its endpoint and never transmitted.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// SharedSecret is the 32-byte Diffie–Hellman output. Both endpoints derive
// their own copy independently; the copies are byte-identical for any valid
// pair of key pairs.
type SharedSecret [32]byte

// Slice returns the secret as a []byte.
func (s SharedSecret) Slice() []byte { return s[:] }

// MessageKey is the symmetric key for exactly one message, derived from the
// shared secret and that message's ratchet counter. It is recomputed on
// demand and never stored.
type MessageKey [32]byte

// Slice returns the key as a []byte.
func (k MessageKey) Slice() []byte { return k[:] }

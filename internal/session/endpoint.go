package session

import (
	"errors"
	"fmt"
	"time"

	"hush/internal/crypto"
	"hush/internal/domain"
	"hush/internal/protocol/ratchet"
	"hush/internal/util/memzero"
)

var (
	// ErrNotReady indicates Send or Receive before the handshake completed.
	// This is a caller bug, surfaced immediately.
	ErrNotReady = errors.New("session: handshake not complete")

	// ErrHandshakeFailed indicates shared-secret agreement failed. Fatal to
	// this session attempt; do not retry with the same peer key.
	ErrHandshakeFailed = errors.New("session: handshake failed")
)

// phase is an endpoint's position in the session state machine.
type phase int

const (
	phaseUninitialized phase = iota
	phaseKeysGenerated
	phaseHandshakeComplete
)

// Endpoint is one party's view of a session: its key pair, its own copy of
// the shared secret and its sending ratchet. The key pair and secret are
// written exactly once, at key generation and handshake completion, and
// treated as immutable afterwards.
type Endpoint struct {
	id     domain.PeerID
	phase  phase
	priv   domain.X25519Private
	pub    domain.X25519Public
	secret domain.SharedSecret
	sender *ratchet.Sender
}

// NewEndpoint returns an uninitialized endpoint named id.
func NewEndpoint(id domain.PeerID) *Endpoint {
	return &Endpoint{id: id}
}

// ID returns the endpoint's name.
func (e *Endpoint) ID() domain.PeerID { return e.id }

// GenerateKeys produces the endpoint's key pair and moves it to
// KeysGenerated. Both endpoints must get here before either can handshake.
func (e *Endpoint) GenerateKeys() error {
	priv, pub, err := crypto.GenerateX25519()
	if err != nil {
		return err
	}
	e.priv, e.pub = priv, pub
	e.phase = phaseKeysGenerated
	return nil
}

// PublicKey returns the half of the key pair that is shared with the peer.
func (e *Endpoint) PublicKey() domain.X25519Public { return e.pub }

// Handshake derives the shared secret from our private key and the peer's
// public key, arms the sending ratchet and moves the endpoint to
// HandshakeComplete. The peer runs the same call with the halves swapped
// and arrives at a byte-identical secret.
func (e *Endpoint) Handshake(peer domain.X25519Public) error {
	if e.phase < phaseKeysGenerated {
		return fmt.Errorf("%w: no local key pair", ErrHandshakeFailed)
	}
	secret, err := crypto.DeriveSharedSecret(e.priv, peer)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
	}
	e.secret = secret
	e.sender = ratchet.NewSender(secret)
	e.phase = phaseHandshakeComplete
	return nil
}

// Send seals plaintext under the key for the endpoint's current ratchet
// counter and returns the envelope carrying that counter. The counter
// advances as a side effect; nothing else here mutates state.
func (e *Endpoint) Send(plaintext []byte) (domain.Envelope, error) {
	if e.phase != phaseHandshakeComplete {
		return domain.Envelope{}, ErrNotReady
	}
	key, counter := e.sender.Next()
	ct, nonce, err := crypto.Seal(key, plaintext)
	memzero.Zero(key[:])
	if err != nil {
		return domain.Envelope{}, err
	}
	return domain.Envelope{
		SenderID:   e.id,
		Counter:    counter,
		Nonce:      nonce,
		Ciphertext: ct,
		Timestamp:  time.Now().UTC(),
	}, nil
}

// Receive re-derives the message key from the counter carried in the
// envelope and opens it. The endpoint's own counter is not consulted and
// not advanced: decryption keys purely off the envelope, so envelopes may
// arrive in any order.
func (e *Endpoint) Receive(env domain.Envelope) ([]byte, error) {
	if e.phase != phaseHandshakeComplete {
		return nil, ErrNotReady
	}
	key := ratchet.MessageKey(e.secret, env.Counter)
	pt, err := crypto.Open(key, env.Ciphertext, env.Nonce)
	memzero.Zero(key[:])
	if err != nil {
		return nil, err
	}
	return pt, nil
}

// Counter reports the ratchet counter the endpoint's next Send will use.
func (e *Endpoint) Counter() uint64 {
	if e.sender == nil {
		return 0
	}
	return e.sender.Counter()
}

// Close zeroes the endpoint's private key and shared secret and returns it
// to Uninitialized. The endpoint cannot be reused.
func (e *Endpoint) Close() {
	memzero.Zero(e.priv[:])
	memzero.Zero(e.secret[:])
	if e.sender != nil {
		e.sender.Wipe()
	}
	e.phase = phaseUninitialized
}

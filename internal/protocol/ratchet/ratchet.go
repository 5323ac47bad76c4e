package ratchet

import (
	"crypto/sha256"
	"io"
	"strconv"
	"sync"

	"golang.org/x/crypto/hkdf"

	"hush/internal/domain"
	"hush/internal/util/memzero"
)

// Domain separation for the message-key KDF. The counter goes into the
// salt as its decimal string, the info label is fixed.
const (
	saltPrefix = "hush-ratchet-"
	keyInfo    = "hush-message-key-v1"
)

// MessageKey derives the symmetric key for one message from the session's
// shared secret and the message's ratchet counter.
//
// The derivation is deterministic: the same (secret, counter) always yields
// the same key, which is how the receiver reproduces it from the envelope.
// Different counters yield unrelated keys, so compromising the key at one
// counter exposes no other message.
func MessageKey(secret domain.SharedSecret, counter uint64) domain.MessageKey {
	salt := []byte(saltPrefix + strconv.FormatUint(counter, 10))
	r := hkdf.New(sha256.New, secret.Slice(), salt, []byte(keyInfo))

	var key domain.MessageKey
	// HKDF-SHA256 can produce far more than 32 bytes; ReadFull cannot fail here.
	_, _ = io.ReadFull(r, key[:])
	return key
}

// Sender tracks one endpoint's send position in the ratchet. The counter
// only moves forward, one step per message. Next is safe for concurrent
// callers: two sends can never observe the same counter, which would reuse
// a message key.
type Sender struct {
	mu      sync.Mutex
	secret  domain.SharedSecret
	counter uint64
}

// NewSender returns a ratchet seeded with the session's shared secret,
// positioned at counter zero.
func NewSender(secret domain.SharedSecret) *Sender {
	return &Sender{secret: secret}
}

// Next returns the message key for the current counter together with the
// counter value it used, then advances. This is the only mutation of the
// counter anywhere in hush.
func (s *Sender) Next() (domain.MessageKey, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.counter
	s.counter++
	return MessageKey(s.secret, c), c
}

// Counter reports the counter the next Next call will use.
func (s *Sender) Counter() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// Wipe zeroes the ratchet's copy of the shared secret. The Sender is
// unusable afterwards.
func (s *Sender) Wipe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	memzero.Zero(s.secret[:])
}

package crypto

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"hush/internal/domain"
)

const (
	// NonceBytes is the AEAD nonce length carried in every envelope.
	NonceBytes = chacha20poly1305.NonceSize

	// TagBytes is the Poly1305 tag length appended to every ciphertext.
	TagBytes = chacha20poly1305.Overhead
)

var (
	// ErrAuthenticationFailed indicates the tag did not verify: the message
	// was tampered with, or the key or nonce is wrong. Callers must drop
	// the message; there is no partial recovery.
	ErrAuthenticationFailed = errors.New("crypto: message authentication failed")

	// ErrCiphertextTooShort indicates the ciphertext cannot even hold a tag.
	ErrCiphertextTooShort = errors.New("crypto: ciphertext too short")

	// ErrInvalidNonce indicates a nonce of the wrong length.
	ErrInvalidNonce = errors.New("crypto: invalid nonce size")
)

// Seal encrypts plaintext under key with ChaCha20-Poly1305 and a fresh
// random 12-byte nonce. The nonce must travel with the ciphertext; drawing
// a new one from crypto/rand per call is what keeps (key, nonce) pairs
// unique.
func Seal(key domain.MessageKey, plaintext []byte) (ciphertext, nonce []byte, err error) {
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, NonceBytes)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Open verifies and decrypts a ciphertext produced by Seal. A tag mismatch
// surfaces as ErrAuthenticationFailed, never as a wrong plaintext.
func Open(key domain.MessageKey, ciphertext, nonce []byte) ([]byte, error) {
	if len(nonce) != NonceBytes {
		return nil, ErrInvalidNonce
	}
	if len(ciphertext) < TagBytes {
		return nil, ErrCiphertextTooShort
	}
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return pt, nil
}

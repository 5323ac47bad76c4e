package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"

	"hush/internal/domain"
)

var (
	// ErrKeyGeneration indicates the secure random source failed while
	// producing a key pair. Fatal to session setup; there is no retry.
	ErrKeyGeneration = errors.New("crypto: key generation failed")

	// ErrInvalidPublicKey indicates the peer public key is not a usable
	// point on the curve. A handshake against such a key must be rejected,
	// not retried.
	ErrInvalidPublicKey = errors.New("crypto: invalid X25519 public key")
)

// GenerateX25519 returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func GenerateX25519() (priv domain.X25519Private, pub domain.X25519Public, err error) {
	if _, err = io.ReadFull(rand.Reader, priv[:]); err != nil {
		err = fmt.Errorf("%w: %v", ErrKeyGeneration, err)
		return
	}
	clamp(&priv)
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrKeyGeneration, err)
		return
	}
	copy(pub[:], pb)
	return
}

// DeriveSharedSecret computes the X25519 shared secret between our private
// key and the peer's public key. The peer point is validated rather than
// trusted: the all-zero encoding is rejected up front and low-order points
// are rejected by the all-zero-output check inside curve25519.X25519.
//
// For any two valid generated pairs (A, B),
// DeriveSharedSecret(A.priv, B.pub) == DeriveSharedSecret(B.priv, A.pub);
// the handshake depends on this.
func DeriveSharedSecret(priv domain.X25519Private, peer domain.X25519Public) (domain.SharedSecret, error) {
	var secret domain.SharedSecret
	var zero domain.X25519Public
	if peer == zero {
		return secret, ErrInvalidPublicKey
	}
	out, err := curve25519.X25519(priv.Slice(), peer.Slice())
	if err != nil {
		return secret, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	copy(secret[:], out)
	return secret, nil
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}

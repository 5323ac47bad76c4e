// Package crypto exposes the primitives used by hush.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman with peer point
//     validation (GenerateX25519, DeriveSharedSecret)
//   - ChaCha20-Poly1305 authenticated encryption with a fresh random nonce
//     per message (Seal, Open)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// All key material uses the fixed-size array types from internal/domain.
// Callers should treat returned secrets as sensitive and wipe them with
// internal/util/memzero once they are no longer needed.
package crypto

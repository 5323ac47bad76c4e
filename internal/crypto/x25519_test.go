package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hush/internal/crypto"
	"hush/internal/domain"
)

func TestGenerateX25519_Clamped(t *testing.T) {
	priv, pub, err := crypto.GenerateX25519()
	require.NoError(t, err)

	require.EqualValues(t, 0, priv[0]&7)
	require.EqualValues(t, 0, priv[31]&128)
	require.EqualValues(t, 64, priv[31]&64)
	require.NotEqual(t, domain.X25519Public{}, pub)
}

func TestGenerateX25519_Fresh(t *testing.T) {
	_, pub1, err := crypto.GenerateX25519()
	require.NoError(t, err)
	_, pub2, err := crypto.GenerateX25519()
	require.NoError(t, err)
	require.NotEqual(t, pub1, pub2)
}

func TestDeriveSharedSecret_Symmetry(t *testing.T) {
	aPriv, aPub, err := crypto.GenerateX25519()
	require.NoError(t, err)
	bPriv, bPub, err := crypto.GenerateX25519()
	require.NoError(t, err)

	ab, err := crypto.DeriveSharedSecret(aPriv, bPub)
	require.NoError(t, err)
	ba, err := crypto.DeriveSharedSecret(bPriv, aPub)
	require.NoError(t, err)

	require.Equal(t, ab, ba)
	require.NotEqual(t, domain.SharedSecret{}, ab)
}

func TestDeriveSharedSecret_RejectsZeroPoint(t *testing.T) {
	priv, _, err := crypto.GenerateX25519()
	require.NoError(t, err)

	_, err = crypto.DeriveSharedSecret(priv, domain.X25519Public{})
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestDeriveSharedSecret_RejectsLowOrderPoint(t *testing.T) {
	priv, _, err := crypto.GenerateX25519()
	require.NoError(t, err)

	// u=1 is a small-order point; the DH output is all zeros and must be
	// rejected rather than used as a secret.
	var lowOrder domain.X25519Public
	lowOrder[0] = 1

	_, err = crypto.DeriveSharedSecret(priv, lowOrder)
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestFingerprint(t *testing.T) {
	_, pub, err := crypto.GenerateX25519()
	require.NoError(t, err)

	fp := crypto.Fingerprint(pub.Slice())
	require.Len(t, fp, 20)
	require.Equal(t, fp, crypto.Fingerprint(pub.Slice()))
}

package transport

import (
	"encoding/json"
	"errors"
	"fmt"

	"hush/internal/crypto"
	"hush/internal/domain"
)

// ErrMalformedEnvelope indicates wire bytes that do not decode to a usable
// envelope.
var ErrMalformedEnvelope = errors.New("transport: malformed envelope")

// Encode serialises an envelope to its JSON wire form. Byte fields are
// base64 per encoding/json, the timestamp is RFC 3339.
func Encode(env domain.Envelope) ([]byte, error) {
	return json.Marshal(env)
}

// Decode parses and validates wire bytes. Structural problems (bad JSON,
// missing sender, wrong nonce length, ciphertext too short to hold a tag)
// are reported as ErrMalformedEnvelope before any crypto runs.
func Decode(data []byte) (domain.Envelope, error) {
	var env domain.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if env.SenderID == "" {
		return domain.Envelope{}, fmt.Errorf("%w: missing sender id", ErrMalformedEnvelope)
	}
	if len(env.Nonce) != crypto.NonceBytes {
		return domain.Envelope{}, fmt.Errorf("%w: nonce must be %d bytes", ErrMalformedEnvelope, crypto.NonceBytes)
	}
	if len(env.Ciphertext) < crypto.TagBytes {
		return domain.Envelope{}, fmt.Errorf("%w: ciphertext shorter than tag", ErrMalformedEnvelope)
	}
	return env, nil
}

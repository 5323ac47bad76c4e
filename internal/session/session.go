package session

import (
	"errors"
	"fmt"

	"hush/internal/domain"
)

// ErrUnknownSender indicates an envelope or send request naming a peer that
// is not part of this session.
var ErrUnknownSender = errors.New("session: unknown sender")

// Session pairs two in-process endpoints and drives the handshake and
// message flow between them.
type Session struct {
	a, b        *Endpoint
	established bool
}

// New returns a session over two fresh endpoints named a and b. Nothing is
// generated or derived until Establish.
func New(a, b domain.PeerID) *Session {
	return &Session{a: NewEndpoint(a), b: NewEndpoint(b)}
}

// Established reports whether the handshake has completed.
func (s *Session) Established() bool { return s.established }

// Establish runs the full handshake: both endpoints generate key pairs,
// exchange public halves and independently derive the shared secret. The
// established flag flips false to true exactly once and never resets;
// calling Establish again is a no-op.
func (s *Session) Establish() error {
	if s.established {
		return nil
	}
	if err := s.a.GenerateKeys(); err != nil {
		return err
	}
	if err := s.b.GenerateKeys(); err != nil {
		return err
	}
	if err := s.a.Handshake(s.b.PublicKey()); err != nil {
		return err
	}
	if err := s.b.Handshake(s.a.PublicKey()); err != nil {
		return err
	}
	s.established = true
	return nil
}

// Send seals plaintext on behalf of senderID and returns the envelope to
// hand to the transport.
func (s *Session) Send(senderID domain.PeerID, plaintext []byte) (domain.Envelope, error) {
	if !s.established {
		return domain.Envelope{}, ErrNotReady
	}
	ep, err := s.Endpoint(senderID)
	if err != nil {
		return domain.Envelope{}, err
	}
	return ep.Send(plaintext)
}

// Receive opens env on behalf of the endpoint opposite its sender and
// returns the decrypted message for display. Authentication failures
// propagate untouched; the caller must drop the message.
func (s *Session) Receive(env domain.Envelope) (domain.DecryptedMessage, error) {
	if !s.established {
		return domain.DecryptedMessage{}, ErrNotReady
	}
	var receiver *Endpoint
	switch env.SenderID {
	case s.a.id:
		receiver = s.b
	case s.b.id:
		receiver = s.a
	default:
		return domain.DecryptedMessage{}, fmt.Errorf("%w: %q", ErrUnknownSender, env.SenderID)
	}
	pt, err := receiver.Receive(env)
	if err != nil {
		return domain.DecryptedMessage{}, err
	}
	return domain.DecryptedMessage{
		SenderID:  env.SenderID,
		Plaintext: pt,
		Counter:   env.Counter,
		Timestamp: env.Timestamp,
	}, nil
}

// Endpoint returns the endpoint named id.
func (s *Session) Endpoint(id domain.PeerID) (*Endpoint, error) {
	switch id {
	case s.a.id:
		return s.a, nil
	case s.b.id:
		return s.b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSender, id)
}

// Close zeroes both endpoints' key material.
func (s *Session) Close() {
	s.a.Close()
	s.b.Close()
}

package domain

import "context"

// Transport moves sealed envelopes between endpoints. Implementations own
// the wire encoding; the protocol core treats the pipe as opaque and never
// inspects what happens between Deliver and Collect.
type Transport interface {
	Deliver(ctx context.Context, to PeerID, env Envelope) error
	Collect(ctx context.Context, to PeerID, limit int) ([]Envelope, error)
}

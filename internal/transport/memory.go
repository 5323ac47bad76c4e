package transport

import (
	"context"
	"sync"

	"hush/internal/domain"
)

// Memory is an in-process Transport: a mutex-guarded FIFO queue per
// recipient. It stands in for a real byte pipe in tests and the demo CLI.
type Memory struct {
	mu     sync.Mutex
	queues map[domain.PeerID][]domain.Envelope
}

// NewMemory returns an empty in-memory transport.
func NewMemory() *Memory {
	return &Memory{queues: make(map[domain.PeerID][]domain.Envelope)}
}

// Deliver appends env to the recipient's queue.
func (m *Memory) Deliver(ctx context.Context, to domain.PeerID, env domain.Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues[to] = append(m.queues[to], env)
	return nil
}

// Collect removes and returns up to limit envelopes for the recipient, in
// delivery order. limit <= 0 drains the queue.
func (m *Memory) Collect(ctx context.Context, to domain.PeerID, limit int) ([]domain.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	q := m.queues[to]
	if limit <= 0 || limit > len(q) {
		limit = len(q)
	}
	out := make([]domain.Envelope, limit)
	copy(out, q[:limit])
	m.queues[to] = q[limit:]
	return out, nil
}

// Compile-time assertion that Memory implements domain.Transport.
var _ domain.Transport = (*Memory)(nil)

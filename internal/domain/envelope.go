package domain

import "time"

// PeerID names an endpoint within a session.
type PeerID string

// String returns the string form of the peer id.
func (p PeerID) String() string { return string(p) }

// Envelope is the sealed message handed to the transport. It is immutable
// once created and carries everything the receiver needs to re-derive the
// message key: the sender's ratchet counter travels in the clear, the
// plaintext does not.
type Envelope struct {
	SenderID   PeerID    `json:"sender_id"`
	Counter    uint64    `json:"ratchet_counter"`
	Nonce      []byte    `json:"nonce"`
	Ciphertext []byte    `json:"ciphertext"`
	Timestamp  time.Time `json:"timestamp"`
}

// DecryptedMessage is what Session.Receive hands to the display layer.
// It never contains key material.
type DecryptedMessage struct {
	SenderID  PeerID    `json:"sender_id"`
	Plaintext []byte    `json:"plaintext"`
	Counter   uint64    `json:"ratchet_counter"`
	Timestamp time.Time `json:"timestamp"`
}

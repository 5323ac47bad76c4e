// Package commands implements the hush CLI.
//
// The binary exists to exercise the protocol core end to end; the core
// itself has no CLI surface. Decrypted plaintext plus envelope metadata is
// all that ever gets printed, never key material.
package commands

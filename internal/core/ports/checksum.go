package ports

import "hash"

// Hasher describes one checksum algorithm in the registry.
type Hasher interface {
	// Name returns the canonical algorithm name.
	Name() string

	// Size returns the digest length in bytes.
	Size() int

	// New returns a fresh incremental hash. Instances are never shared
	// between verifications.
	New() hash.Hash
}

package toast

import "github.com/google/uuid"

// IDGenerator produces identifiers for new messages.
// Implementations must make collisions negligible for the expected volume;
// the store additionally rejects an ID that is already active.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f.
func (f IDGeneratorFunc) NewID() string { return f() }

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

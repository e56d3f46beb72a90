package store

import "github.com/google/uuid"

// BuildIDGenerator produces build identifiers.
// Implemented by UUIDv7Generator (production) and FixedGenerator (tests).
type BuildIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 build ids.
//
// UUIDv7 embeds a timestamp in the most significant bits, making ids
// roughly sortable by creation time while staying collision-resistant.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns a preset sequence of ids, then panics.
// Test helper for deterministic build ids.
type FixedGenerator struct {
	IDs  []string
	next int
}

func (g *FixedGenerator) Generate() string {
	if g.next >= len(g.IDs) {
		panic("FixedGenerator: out of ids")
	}
	id := g.IDs[g.next]
	g.next++
	return id
}

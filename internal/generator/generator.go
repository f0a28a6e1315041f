package generator

import (
	"math/rand"

	"svw.info/bingo/internal/ports"
)

// DefaultMaxAttempts bounds duplicate-driven regeneration.
const DefaultMaxAttempts = 1000

// CardGenerator creates cards that have not been issued before, using a
// Fingerprinter to recognise repeats.
type CardGenerator struct {
	Fingerprinter ports.Fingerprinter
	MaxAttempts   int

	rng *rand.Rand
}

// NewCardGenerator wires a generator seeded with seed.
func NewCardGenerator(fp ports.Fingerprinter, seed int64) *CardGenerator {
	return &CardGenerator{
		Fingerprinter: fp,
		MaxAttempts:   DefaultMaxAttempts,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

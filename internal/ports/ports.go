package ports

import (
	"context"
	"time"

	"svw.info/bingo/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Attempts int
	Duration time.Duration
}

// Fingerprinter digests a card's contents.
type Fingerprinter interface {
	Fingerprint(c *domain.Card) domain.Fingerprint
}

// FingerprintSet holds fingerprints already issued this session.
type FingerprintSet interface {
	Contains(fp domain.Fingerprint) bool
	Add(fp domain.Fingerprint) bool
	Len() int
}

// Generator creates cards whose fingerprint is not in seen.
type Generator interface {
	Generate(ctx context.Context, seen FingerprintSet) (*domain.Card, Stats, error)
}

// Validator performs structural checks on a card (ranges, column duplicates, Free).
type Validator interface {
	Validate(ctx context.Context, c *domain.Card) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter points at cells that would complete a line.
type Hinter interface {
	Hint(ctx context.Context, v *domain.BoardView) (domain.Hint, bool, error)
}

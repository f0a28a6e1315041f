package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/bingo/internal/domain"
	"svw.info/bingo/internal/ports"
)

// ErrExhausted is returned when every attempt produced a card already seen.
var ErrExhausted = errors.New("generator: no unseen card within attempt limit")

// Generate returns a card whose fingerprint is not in seen. The caller adds
// the fingerprint to seen once it accepts the card.
func (g *CardGenerator) Generate(ctx context.Context, seen ports.FingerprintSet) (*domain.Card, ports.Stats, error) {
	start := time.Now()
	limit := g.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	for attempt := 1; attempt <= limit; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Attempts: attempt - 1, Duration: time.Since(start)}, err
		}
		card := g.fill()
		if seen != nil && seen.Contains(g.Fingerprinter.Fingerprint(card)) {
			continue
		}
		return card, ports.Stats{Attempts: attempt, Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Attempts: limit, Duration: time.Since(start)},
		fmt.Errorf("%w (%d attempts)", ErrExhausted, limit)
}

// fill draws each column without replacement from its range, leaving the
// centre cell Free.
func (g *CardGenerator) fill() *domain.Card {
	card := &domain.Card{}
	for c := 0; c < domain.Size; c++ {
		lo, hi := domain.ColumnRange(c)
		var used [domain.ColumnSpan]bool
		for r := 0; r < domain.Size; r++ {
			if domain.IsFree(r, c) {
				card.Values[r][c] = domain.Free
				continue
			}
			n := lo + g.rng.Intn(hi-lo+1)
			for used[n-lo] {
				n = lo + g.rng.Intn(hi-lo+1)
			}
			used[n-lo] = true
			card.Values[r][c] = n
		}
	}
	return card
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"svw.info/bingo/internal/board"
	"svw.info/bingo/internal/domain"
	"svw.info/bingo/internal/ports"
)

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrNoCard is returned when play is attempted before a card is dealt.
	ErrNoCard = errors.New("no active card")
	// ErrInvalidCard means the generator produced a malformed card.
	ErrInvalidCard = errors.New("generated card failed validation")
)

// Snapshot is what a presentation layer renders.
type Snapshot struct {
	Fingerprint domain.Fingerprint `json:"fingerprint"`
	View        domain.BoardView   `json:"view"`
	Issued      int                `json:"issued"`
}

// Service is one player's session: the active card, its board and the set
// of fingerprints issued so far. Calls are serialized, so concurrent
// adapters observe the same single sequence of operations.
type Service struct {
	Generator     ports.Generator
	Validator     ports.Validator
	Hinter        ports.Hinter
	Fingerprinter ports.Fingerprinter
	Seen          ports.FingerprintSet

	log *slog.Logger

	mu    sync.Mutex
	card  *domain.Card
	fp    domain.Fingerprint
	board *board.State
}

func NewService(g ports.Generator, v ports.Validator, h ports.Hinter, fp ports.Fingerprinter, seen ports.FingerprintSet, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{Generator: g, Validator: v, Hinter: h, Fingerprinter: fp, Seen: seen, log: log, board: board.New()}
}

// NewCard deals a card not seen before in this session, records its
// fingerprint and resets the board.
func (u *Service) NewCard(ctx context.Context) (Snapshot, ports.Stats, error) {
	if u.Generator == nil || u.Fingerprinter == nil || u.Seen == nil {
		return Snapshot{}, ports.Stats{}, errNotConfigured
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	card, st, err := u.Generator.Generate(ctx, u.Seen)
	if err != nil {
		return Snapshot{}, st, fmt.Errorf("generate card: %w", err)
	}
	if u.Validator != nil {
		ok, conflicts, err := u.Validator.Validate(ctx, card)
		if err != nil {
			return Snapshot{}, st, fmt.Errorf("validate card: %w", err)
		}
		if !ok {
			return Snapshot{}, st, fmt.Errorf("%w: conflicts at %v", ErrInvalidCard, conflicts)
		}
	}
	fp := u.Fingerprinter.Fingerprint(card)
	if !u.Seen.Add(fp) {
		return Snapshot{}, st, fmt.Errorf("generate card: fingerprint %s already issued", fp.Short())
	}
	u.card, u.fp = card, fp
	u.board.Reset()

	u.log.Debug("card dealt", "fingerprint", fp.Short(), "attempts", st.Attempts, "dur", st.Duration, "issued", u.Seen.Len())
	return u.snapshot(), st, nil
}

// Mark marks a cell on the active card and returns the resulting events.
func (u *Service) Mark(ctx context.Context, row, col int) ([]domain.LineEvent, Snapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.card == nil {
		return nil, Snapshot{}, ErrNoCard
	}
	events, err := u.board.Mark(row, col)
	if err != nil {
		return nil, Snapshot{}, err
	}
	for _, ev := range events {
		u.log.Info(ev.Kind.String(), "line", ev.Line.String(), "fingerprint", u.fp.Short())
	}
	return events, u.snapshot(), nil
}

// Snapshot returns the current card and board.
func (u *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.card == nil {
		return Snapshot{}, ErrNoCard
	}
	return u.snapshot(), nil
}

// Card returns a copy of the active card.
func (u *Service) Card(ctx context.Context) (domain.Card, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.card == nil {
		return domain.Card{}, ErrNoCard
	}
	return *u.card, nil
}

func (u *Service) Hint(ctx context.Context) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	snap, err := u.Snapshot(ctx)
	if err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, &snap.View)
}

func (u *Service) snapshot() Snapshot {
	v := u.board.View()
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v.Cells[r][c].Value = u.card.Values[r][c]
		}
	}
	return Snapshot{Fingerprint: u.fp, View: v, Issued: u.Seen.Len()}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"svw.info/bingo/internal/board"
	"svw.info/bingo/internal/domain"
	"svw.info/bingo/internal/fingerprint"
	"svw.info/bingo/internal/generator"
	"svw.info/bingo/internal/hint"
	"svw.info/bingo/internal/infrastructure/storage"
	"svw.info/bingo/internal/ports"
	"svw.info/bingo/internal/validator"
)

// fixedGen always returns the same card.
type fixedGen struct{ card domain.Card }

func (g fixedGen) Generate(ctx context.Context, seen ports.FingerprintSet) (*domain.Card, ports.Stats, error) {
	c := g.card
	return &c, ports.Stats{Attempts: 1}, nil
}

func newService(t *testing.T, seed int64) *Service {
	t.Helper()
	fp, err := fingerprint.New()
	if err != nil {
		t.Fatalf("fingerprint.New: %v", err)
	}
	return NewService(generator.NewCardGenerator(fp, seed), validator.New(), hint.NewReach(nil), fp, storage.NewMemory(), nil)
}

func TestMarkBeforeCard(t *testing.T) {
	u := newService(t, 1)
	if _, _, err := u.Mark(context.Background(), 0, 0); !errors.Is(err, ErrNoCard) {
		t.Fatalf("err = %v, want ErrNoCard", err)
	}
	if _, err := u.Snapshot(context.Background()); !errors.Is(err, ErrNoCard) {
		t.Fatalf("err = %v, want ErrNoCard", err)
	}
}

func TestNewCardRecordsFingerprint(t *testing.T) {
	u := newService(t, 3)
	ctx := context.Background()
	seen := map[domain.Fingerprint]bool{}
	for i := 1; i <= 20; i++ {
		snap, _, err := u.NewCard(ctx)
		if err != nil {
			t.Fatalf("NewCard: %v", err)
		}
		if seen[snap.Fingerprint] {
			t.Fatalf("card %d repeats fingerprint %s", i, snap.Fingerprint.Short())
		}
		seen[snap.Fingerprint] = true
		if snap.Issued != i {
			t.Fatalf("issued = %d, want %d", snap.Issued, i)
		}
		if !snap.View.Cells[2][2].Marked || snap.View.Cells[2][2].Value != domain.Free {
			t.Fatalf("centre = %+v", snap.View.Cells[2][2])
		}
	}
}

func TestNewCardResetsBoard(t *testing.T) {
	u := newService(t, 5)
	ctx := context.Background()
	if _, _, err := u.NewCard(ctx); err != nil {
		t.Fatal(err)
	}
	for c := 0; c < 4; c++ {
		if _, _, err := u.Mark(ctx, 0, c); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok, _ := u.Hint(ctx); !ok {
		t.Fatal("expected a hint after reach")
	}
	snap, _, err := u.NewCard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if snap.View.Lines[domain.RowLine(0)] != domain.LineUnreached || snap.View.Cells[0][0].Marked {
		t.Fatal("new card should start with a fresh board")
	}
	events, _, err := u.Mark(ctx, 0, 0)
	if err != nil || len(events) != 0 {
		t.Fatalf("events = %v err = %v", events, err)
	}
}

func TestMarkOutOfBoundsPropagates(t *testing.T) {
	u := newService(t, 9)
	ctx := context.Background()
	if _, _, err := u.NewCard(ctx); err != nil {
		t.Fatal(err)
	}
	if _, _, err := u.Mark(ctx, 7, 0); !errors.Is(err, board.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestInvalidCardRejected(t *testing.T) {
	fp, _ := fingerprint.New()
	bad := domain.Card{}
	bad.Values[0][0] = 99
	u := NewService(fixedGen{bad}, validator.New(), nil, fp, storage.NewMemory(), nil)
	if _, _, err := u.NewCard(context.Background()); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("err = %v, want ErrInvalidCard", err)
	}
	if u.Seen.Len() != 0 {
		t.Fatal("rejected card must not be recorded")
	}
}

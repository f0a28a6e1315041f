package validator

import (
	"context"

	"svw.info/bingo/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports cells that break the card layout: values outside the
// column range, repeats within a column, or a wrong centre cell.
func (v *FastValidator) Validate(ctx context.Context, card *domain.Card) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 4)
	for c := 0; c < domain.Size; c++ {
		lo, hi := domain.ColumnRange(c)
		m := 0
		for r := 0; r < domain.Size; r++ {
			val := card.Values[r][c]
			if domain.IsFree(r, c) {
				if val != domain.Free {
					conf = append(conf, domain.CellCoord{Row: r, Col: c})
				}
				continue
			}
			if val < lo || val > hi {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			bit := 1 << (val - lo)
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

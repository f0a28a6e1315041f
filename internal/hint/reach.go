package hint

import (
	"context"

	"golang.org/x/text/message"

	"svw.info/bingo/internal/domain"
	"svw.info/bingo/internal/i18n"
)

// Reach suggests the open cells of reached lines.
type Reach struct {
	printer *message.Printer
}

func NewReach(p *message.Printer) *Reach { return &Reach{printer: p} }

// Hint returns the unmarked cell of every reached line, in line order
// without duplicates. It reports false when no line is one cell short.
func (h *Reach) Hint(ctx context.Context, v *domain.BoardView) (domain.Hint, bool, error) {
	var out domain.Hint
	seen := map[domain.CellCoord]bool{}
	for i, st := range v.Lines {
		if st != domain.LineReached {
			continue
		}
		id := domain.LineID(i)
		for _, c := range id.Cells() {
			if v.Cells[c.Row][c.Col].Marked {
				continue
			}
			out.Lines = append(out.Lines, id)
			if !seen[c] {
				seen[c] = true
				out.Cells = append(out.Cells, c)
			}
		}
	}
	if len(out.Cells) == 0 {
		return domain.Hint{}, false, nil
	}
	if h.printer != nil {
		out.Message = h.printer.Sprintf(i18n.KeyHint, len(out.Cells))
	}
	return out, true, nil
}

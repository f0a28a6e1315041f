package board

import "svw.info/bingo/internal/domain"

// View snapshots the board for rendering. Card values are left zero;
// callers that own the card fill them in.
//
// On a reached line the unmarked cell is flagged ReachOpen (highlight) and
// the marked cells ReachMarked (neutral border). Every cell of a complete
// line is flagged Bingo.
func (s *State) View() domain.BoardView {
	var v domain.BoardView
	v.Lines = s.lines
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v.Cells[r][c].Marked = s.marked[r][c]
		}
	}
	for i, st := range s.lines {
		if st == domain.LineUnreached {
			continue
		}
		for _, cc := range domain.LineID(i).Cells() {
			cell := &v.Cells[cc.Row][cc.Col]
			switch {
			case st == domain.LineBingo:
				cell.Bingo = true
			case cell.Marked:
				cell.ReachMarked = true
			default:
				cell.ReachOpen = true
			}
		}
	}
	return v
}

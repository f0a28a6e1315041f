// Package board tracks which cells of a card are marked and detects
// reach (one cell short) and bingo (complete) lines.
//
// A State is not safe for concurrent use; callers serialize access.
package board

import (
	"errors"
	"fmt"

	"svw.info/bingo/internal/domain"
)

// ErrOutOfBounds is returned by Mark for coordinates off the card.
var ErrOutOfBounds = errors.New("board: cell out of bounds")

// State holds the marks and per-line progress of one card.
type State struct {
	marked [domain.Size][domain.Size]bool
	lines  [domain.NumLines]domain.LineState
}

// New returns a board with only the Free cell marked.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset clears every mark except Free and returns all lines to unreached.
func (s *State) Reset() {
	*s = State{}
	s.marked[domain.FreeRow][domain.FreeCol] = true
}

// Marked reports whether (row, col) is marked. Off-card cells are never marked.
func (s *State) Marked(row, col int) bool {
	return domain.InBounds(row, col) && s.marked[row][col]
}

// Line returns the progress of one line.
func (s *State) Line(id domain.LineID) domain.LineState {
	if id < 0 || id >= domain.NumLines {
		return domain.LineUnreached
	}
	return s.lines[id]
}

// Mark marks (row, col) and rescans the board.
//
// Rows and columns are scanned interleaved by index (row i, then column i)
// and the scan stops at the first complete line. Both diagonals are always
// checked afterwards. A line reports reach once per card; a complete line
// reports bingo every time the scan reaches it.
func (s *State) Mark(row, col int) ([]domain.LineEvent, error) {
	if !domain.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	s.marked[row][col] = true

	var events []domain.LineEvent
	for i := 0; i < domain.Size; i++ {
		if s.check(domain.RowLine(i), &events) {
			break
		}
		if s.check(domain.ColLine(i), &events) {
			break
		}
	}
	s.check(domain.DiagDown, &events)
	s.check(domain.DiagUp, &events)
	return events, nil
}

// check evaluates one line, appending any event, and reports whether the
// line is complete.
func (s *State) check(id domain.LineID, events *[]domain.LineEvent) bool {
	switch s.count(id) {
	case domain.Size:
		s.lines[id] = domain.LineBingo
		*events = append(*events, domain.LineEvent{Kind: domain.EventBingo, Line: id, Cells: id.Cells()})
		return true
	case domain.Size - 1:
		if s.lines[id] == domain.LineUnreached {
			s.lines[id] = domain.LineReached
			*events = append(*events, domain.LineEvent{Kind: domain.EventReach, Line: id, Cells: id.Cells()})
		}
	}
	return false
}

func (s *State) count(id domain.LineID) int {
	n := 0
	for _, c := range id.Cells() {
		if s.marked[c.Row][c.Col] {
			n++
		}
	}
	return n
}

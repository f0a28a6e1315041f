package board

import (
	"errors"
	"testing"

	"svw.info/bingo/internal/domain"
)

type step struct {
	row, col int
	want     []domain.LineEvent
}

func reach(id domain.LineID) domain.LineEvent {
	return domain.LineEvent{Kind: domain.EventReach, Line: id, Cells: id.Cells()}
}

func bingo(id domain.LineID) domain.LineEvent {
	return domain.LineEvent{Kind: domain.EventBingo, Line: id, Cells: id.Cells()}
}

func play(t *testing.T, s *State, steps []step) {
	t.Helper()
	for i, st := range steps {
		got, err := s.Mark(st.row, st.col)
		if err != nil {
			t.Fatalf("step %d Mark(%d,%d): %v", i, st.row, st.col, err)
		}
		if len(got) != len(st.want) {
			t.Fatalf("step %d Mark(%d,%d) = %v, want %v", i, st.row, st.col, got, st.want)
		}
		for j := range got {
			if got[j] != st.want[j] {
				t.Fatalf("step %d event %d = %v, want %v", i, j, got[j], st.want[j])
			}
		}
	}
}

func TestNewMarksOnlyFree(t *testing.T) {
	s := New()
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if s.Marked(r, c) != domain.IsFree(r, c) {
				t.Fatalf("Marked(%d,%d) = %v", r, c, s.Marked(r, c))
			}
		}
	}
	for id := domain.LineID(0); id < domain.NumLines; id++ {
		if s.Line(id) != domain.LineUnreached {
			t.Fatalf("line %s = %s", id, s.Line(id))
		}
	}
}

func TestRowReachThenBingo(t *testing.T) {
	play(t, New(), []step{
		{0, 0, nil},
		{0, 1, nil},
		{0, 2, nil},
		{0, 3, []domain.LineEvent{reach(domain.RowLine(0))}},
		{0, 4, []domain.LineEvent{bingo(domain.RowLine(0))}},
	})
}

func TestDiagonalCountsFree(t *testing.T) {
	s := New()
	play(t, s, []step{
		{0, 0, nil},
		{1, 1, nil},
		{3, 3, []domain.LineEvent{reach(domain.DiagDown)}},
		{2, 2, nil},
		{4, 4, []domain.LineEvent{bingo(domain.DiagDown)}},
	})
	if s.Line(domain.DiagDown) != domain.LineBingo {
		t.Fatalf("diag-down = %s", s.Line(domain.DiagDown))
	}
}

func TestReachAnnouncedOnce(t *testing.T) {
	play(t, New(), []step{
		{0, 0, nil},
		{0, 1, nil},
		{0, 2, nil},
		{0, 3, []domain.LineEvent{reach(domain.RowLine(0))}},
		{4, 4, nil},
		{3, 4, nil},
		{1, 4, nil},
		{0, 3, nil},
	})
}

func TestBingoStopsRowColumnScan(t *testing.T) {
	// Column 4 reaches 4/5 on the same mark that completes row 0, but the
	// row/column scan stops at row 0 so column 4 is never announced.
	s := New()
	play(t, s, []step{
		{0, 0, nil},
		{0, 1, nil},
		{0, 2, nil},
		{0, 3, []domain.LineEvent{reach(domain.RowLine(0))}},
		{4, 4, nil},
		{3, 4, nil},
		{1, 4, nil},
		{0, 4, []domain.LineEvent{bingo(domain.RowLine(0))}},
		{0, 4, []domain.LineEvent{bingo(domain.RowLine(0))}},
	})
	if s.Line(domain.ColLine(4)) != domain.LineUnreached {
		t.Fatalf("col-4 = %s, want unreached", s.Line(domain.ColLine(4)))
	}
}

func TestDiagonalsCheckedAfterBingo(t *testing.T) {
	play(t, New(), []step{
		{0, 4, nil},
		{3, 1, nil},
		{1, 0, nil},
		{1, 1, nil},
		{1, 2, nil},
		{1, 4, []domain.LineEvent{reach(domain.RowLine(1))}},
		{1, 3, []domain.LineEvent{bingo(domain.RowLine(1)), reach(domain.DiagUp)}},
	})
}

func TestColumnBingo(t *testing.T) {
	play(t, New(), []step{
		{0, 2, nil},
		{1, 2, nil},
		{3, 2, []domain.LineEvent{reach(domain.ColLine(2))}},
		{4, 2, []domain.LineEvent{bingo(domain.ColLine(2))}},
	})
}

func TestResetAllowsRenotify(t *testing.T) {
	s := New()
	steps := []step{
		{4, 0, nil},
		{4, 1, nil},
		{4, 2, nil},
		{4, 3, []domain.LineEvent{reach(domain.RowLine(4))}},
	}
	play(t, s, steps)
	s.Reset()
	if s.Marked(4, 0) || !s.Marked(2, 2) {
		t.Fatal("Reset should clear marks but keep Free")
	}
	if s.Line(domain.RowLine(4)) != domain.LineUnreached {
		t.Fatalf("row-4 = %s after reset", s.Line(domain.RowLine(4)))
	}
	play(t, s, steps)
}

func TestMarkOutOfBounds(t *testing.T) {
	s := New()
	for _, c := range []domain.CellCoord{{Row: -1, Col: 0}, {Row: 5, Col: 0}, {Row: 0, Col: 5}, {Row: 0, Col: -3}} {
		if _, err := s.Mark(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Mark(%d,%d) err = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
	}
}

func TestViewHighlightsReachAndBingo(t *testing.T) {
	s := New()
	for c := 0; c < 4; c++ {
		if _, err := s.Mark(0, c); err != nil {
			t.Fatal(err)
		}
	}
	v := s.View()
	for c := 0; c < 4; c++ {
		if !v.Cells[0][c].ReachMarked || v.Cells[0][c].ReachOpen {
			t.Fatalf("cell (0,%d) = %+v, want reach-marked", c, v.Cells[0][c])
		}
	}
	if !v.Cells[0][4].ReachOpen || v.Cells[0][4].Marked {
		t.Fatalf("cell (0,4) = %+v, want reach-open", v.Cells[0][4])
	}
	if v.Cells[1][0].ReachOpen || v.Cells[1][0].ReachMarked {
		t.Fatalf("cell (1,0) should not be highlighted: %+v", v.Cells[1][0])
	}
	if v.Bingo() {
		t.Fatal("no line is complete yet")
	}

	if _, err := s.Mark(0, 4); err != nil {
		t.Fatal(err)
	}
	v = s.View()
	for c := 0; c < domain.Size; c++ {
		if !v.Cells[0][c].Bingo {
			t.Fatalf("cell (0,%d) should be part of the bingo line", c)
		}
	}
	if !v.Bingo() || v.Lines[domain.RowLine(0)] != domain.LineBingo {
		t.Fatalf("row-0 = %s", v.Lines[domain.RowLine(0)])
	}
}

package domain

import (
	"fmt"
	"strings"
)

const (
	// Size is the fixed edge length of a card.
	Size = 5
	// ColumnSpan is how many numbers each column may draw from.
	ColumnSpan = 15
	// Free is the value stored in the centre cell.
	Free    = 0
	FreeRow = 2
	FreeCol = 2
)

// ColumnRange returns the inclusive number range for column c.
func ColumnRange(c int) (lo, hi int) {
	lo = c*ColumnSpan + 1
	return lo, lo + ColumnSpan - 1
}

// InBounds reports whether (row, col) addresses a cell on the card.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsFree reports whether (row, col) is the centre cell.
func IsFree(row, col int) bool { return row == FreeRow && col == FreeCol }

// Card holds the numbers printed on one bingo card, indexed [row][col].
type Card struct {
	Values [Size][Size]int `json:"values"`
}

// String renders the card as a plain text grid.
func (c *Card) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if IsFree(r, col) {
				b.WriteString("  FREE")
			} else {
				fmt.Fprintf(&b, "%6d", c.Values[r][col])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// CellCoord identifies a cell on the card.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Fingerprint is a hex digest identifying a card's contents.
type Fingerprint string

// Short returns a display prefix of the fingerprint.
func (f Fingerprint) Short() string {
	if len(f) > 12 {
		return string(f[:12])
	}
	return string(f)
}

// LineEvent reports a reach or bingo on one line.
type LineEvent struct {
	Kind  EventKind       `json:"kind"`
	Line  LineID          `json:"line"`
	Cells [Size]CellCoord `json:"cells"`
}

// Hint points the player at cells that would complete a line.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Lines   []LineID    `json:"lines,omitempty"`
}

// CellView carries what a presentation layer needs to style one cell.
type CellView struct {
	Value  int  `json:"value"`
	Marked bool `json:"marked"`
	// ReachOpen is set on the unmarked cell of a reached line.
	ReachOpen bool `json:"reachOpen,omitempty"`
	// ReachMarked is set on marked cells of a reached line.
	ReachMarked bool `json:"reachMarked,omitempty"`
	Bingo       bool `json:"bingo,omitempty"`
}

// BoardView is a read-only snapshot of a board for rendering.
type BoardView struct {
	Cells [Size][Size]CellView `json:"cells"`
	Lines [NumLines]LineState  `json:"lines"`
}

// Bingo reports whether any line is complete.
func (v *BoardView) Bingo() bool {
	for _, s := range v.Lines {
		if s == LineBingo {
			return true
		}
	}
	return false
}

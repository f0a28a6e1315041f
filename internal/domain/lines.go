package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// LineID names one of the 12 scoring lines: rows 0-4, columns 0-4,
// then the "\" and "/" diagonals.
type LineID int

const (
	// DiagDown runs top-left to bottom-right.
	DiagDown LineID = 2 * Size
	// DiagUp runs top-right to bottom-left.
	DiagUp LineID = 2*Size + 1

	NumLines = 2*Size + 2
)

func RowLine(r int) LineID { return LineID(r) }
func ColLine(c int) LineID { return LineID(Size + c) }

// Cells returns the coordinates of the line in scan order.
func (id LineID) Cells() [Size]CellCoord {
	var out [Size]CellCoord
	for i := 0; i < Size; i++ {
		switch {
		case id < Size:
			out[i] = CellCoord{Row: int(id), Col: i}
		case id < 2*Size:
			out[i] = CellCoord{Row: i, Col: int(id) - Size}
		case id == DiagDown:
			out[i] = CellCoord{Row: i, Col: i}
		default:
			out[i] = CellCoord{Row: i, Col: Size - i - 1}
		}
	}
	return out
}

// Contains reports whether the line passes through (row, col).
func (id LineID) Contains(row, col int) bool {
	for _, c := range id.Cells() {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}

func (id LineID) String() string {
	switch {
	case id >= 0 && id < Size:
		return "row-" + strconv.Itoa(int(id))
	case id >= Size && id < 2*Size:
		return "col-" + strconv.Itoa(int(id)-Size)
	case id == DiagDown:
		return "diag-down"
	case id == DiagUp:
		return "diag-up"
	}
	return fmt.Sprintf("line(%d)", int(id))
}

func (id LineID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// ParseLineID is the inverse of LineID.String.
func ParseLineID(s string) (LineID, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "diag-down":
		return DiagDown, nil
	case "diag-up":
		return DiagUp, nil
	}
	for prefix, base := range map[string]int{"row-": 0, "col-": Size} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			n, err := strconv.Atoi(rest)
			if err != nil || n < 0 || n >= Size {
				return 0, fmt.Errorf("invalid line %q", s)
			}
			return LineID(base + n), nil
		}
	}
	return 0, fmt.Errorf("invalid line %q", s)
}

func (id *LineID) UnmarshalText(b []byte) error {
	v, err := ParseLineID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

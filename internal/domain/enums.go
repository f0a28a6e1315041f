package domain

// LineState tracks a line's progress for the lifetime of one card.
type LineState int

const (
	LineUnreached LineState = iota
	LineReached             // 4 of 5 marked, reach already announced
	LineBingo               // 5 of 5 marked
)

func (s LineState) String() string {
	switch s {
	case LineReached:
		return "reach"
	case LineBingo:
		return "bingo"
	default:
		return "unreached"
	}
}

func (s LineState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// EventKind labels what a mark caused on a line.
type EventKind int

const (
	EventReach EventKind = iota
	EventBingo
)

func (k EventKind) String() string {
	if k == EventBingo {
		return "bingo"
	}
	return "reach"
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

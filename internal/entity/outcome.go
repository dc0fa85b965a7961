package entity

// Outcome is the derived terminal/non-terminal status of a board. It is always
// recomputed from the grid, never stored on it.
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeDraw
	OutcomeXWin
	OutcomeOWin
)

func winFor(marker Marker) Outcome {
	if marker == MarkerX {
		return OutcomeXWin
	}
	return OutcomeOWin
}

func (that Outcome) IsTerminal() bool {
	return that != OutcomeInProgress
}

// Winner - returns the winning marker for a win outcome.
func (that Outcome) Winner() (Marker, bool) {
	switch that {
	case OutcomeXWin:
		return MarkerX, true
	case OutcomeOWin:
		return MarkerO, true
	default:
		return 0, false
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeInProgress:
		return "in progress"
	case OutcomeDraw:
		return "draw"
	case OutcomeXWin:
		return "X wins"
	case OutcomeOWin:
		return "O wins"
	default:
		return "unknown"
	}
}

package entity

// Marker is one of the two players' symbols.
type Marker uint8

const (
	MarkerX Marker = iota + 1
	MarkerO
)

// Opponent - returns the other marker.
func (that Marker) Opponent() Marker {
	if that == MarkerX {
		return MarkerO
	}
	return MarkerX
}

func (that Marker) IsValid() bool {
	return that == MarkerX || that == MarkerO
}

func (that Marker) String() string {
	switch that {
	case MarkerX:
		return "X"
	case MarkerO:
		return "O"
	default:
		return "?"
	}
}

// Cell is a single grid position's state: empty, or marked by a player.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func cellOf(marker Marker) Cell {
	if marker == MarkerX {
		return CellX
	}
	return CellO
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// Marker - returns the marker occupying the cell, if any.
func (that Cell) Marker() (Marker, bool) {
	switch that {
	case CellX:
		return MarkerX, true
	case CellO:
		return MarkerO, true
	default:
		return 0, false
	}
}

func (that Cell) String() string {
	if marker, ok := that.Marker(); ok {
		return marker.String()
	}
	return "."
}

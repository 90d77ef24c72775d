package entity

// Cell is the state of one board position.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

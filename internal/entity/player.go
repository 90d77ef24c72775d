package entity

type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Mark - returns the cell state the player leaves on the board.
func (that Player) Mark() Cell {
	if that == PlayerO {
		return CellO
	}
	return CellX
}

// Opponent - returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return that.Mark().String()
}

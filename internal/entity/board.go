package entity

import "strings"

const Size = 3

const rowSeparator = "-------------"

type Position struct {
	Row int
	Col int
}

type Line [Size]Position

// Lines - every row, column and diagonal that wins the game when filled by one player.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a fixed 3x3 grid. Coordinates are zero-based and must be in [0,2];
// range checks belong to the caller.
type Board struct {
	cells [Size][Size]Cell
}

func (that *Board) Reset() {
	for r := range that.cells {
		for c := range that.cells[r] {
			that.cells[r][c] = EmptyCell
		}
	}
}

func (that *Board) Cell(row, col int) Cell {
	return that.cells[row][col]
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.cells[row][col] == EmptyCell
}

// Place - writes the player's mark. The cell must be empty.
func (that *Board) Place(row, col int, player Player) {
	that.cells[row][col] = player.Mark()
}

// Occupied - returns the number of non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for r := range that.cells {
		for c := range that.cells[r] {
			if that.cells[r][c] != EmptyCell {
				count++
			}
		}
	}
	return count
}

func (that *Board) HasWin(player Player) bool {
	mark := player.Mark()
	for _, line := range Lines {
		if that.lineFilledWith(line, mark) {
			return true
		}
	}
	return false
}

// IsTieCandidate - reports whether every line holds both marks, so neither player can still win.
// A full board without a winner is covered as well.
func (that *Board) IsTieCandidate() bool {
	for _, line := range Lines {
		if !that.isBlocked(line) {
			return false
		}
	}
	return true
}

func (that *Board) Render() string {
	var sb strings.Builder

	sb.WriteString(rowSeparator)
	sb.WriteByte('\n')
	for r := range that.cells {
		sb.WriteString("| ")
		for c := range that.cells[r] {
			sb.WriteString(that.cells[r][c].String())
			sb.WriteString(" | ")
		}
		sb.WriteByte('\n')
		sb.WriteString(rowSeparator)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Board) lineFilledWith(line Line, mark Cell) bool {
	for _, pos := range line {
		if that.cells[pos.Row][pos.Col] != mark {
			return false
		}
	}
	return true
}

func (that *Board) isBlocked(line Line) bool {
	var hasX, hasO bool
	for _, pos := range line {
		switch that.cells[pos.Row][pos.Col] {
		case CellX:
			hasX = true
		case CellO:
			hasO = true
		case EmptyCell:
		}
	}
	return hasX && hasO
}

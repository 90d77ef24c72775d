package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	// earliest move on which the first player can complete a line
	minMovesForWin = 5
	// earliest move on which all eight lines can be blocked
	minMovesForTie = 7
)

// Game is the state of one round: the board, whose turn it is and how many marks were placed.
type Game struct {
	ID    string
	Board entity.Board
	Turn  entity.Player
	Moves int

	outcome entity.Outcome
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Reset()

	return game
}

// Reset - starts the round over: empty board, X to move, no moves made.
func (that *Game) Reset() {
	that.Board.Reset()
	that.Turn = entity.PlayerX
	that.Moves = 0
	that.outcome = entity.Ongoing()
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

// MakeTurn - places the current player's mark at zero-based row and col and evaluates the round.
// A rejected turn leaves the game untouched.
func (that *Game) MakeTurn(row, col int) (entity.Outcome, error) {
	if that.outcome.IsFinished() {
		return that.outcome, apperror.ErrGameFinished
	}

	if err := that.validateMove(row, col); err != nil {
		return that.outcome, fmt.Errorf("invalid turn: %w", err)
	}

	that.Board.Place(row, col, that.Turn)
	that.Moves++

	that.updateGameStatus()

	return that.outcome, nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(row, col int) error {
	if row < 0 || row >= entity.Size || col < 0 || col >= entity.Size {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if !that.Board.IsEmpty(row, col) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move made by the current player.
func (that *Game) updateGameStatus() {
	switch {
	case that.Moves >= minMovesForWin && that.Board.HasWin(that.Turn):
		that.outcome = entity.Won(that.Turn)
	case that.Moves >= minMovesForTie && that.Board.IsTieCandidate():
		that.outcome = entity.Tied()
	default:
		that.Turn = that.Turn.Opponent()
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	minCoordinate = 1
	maxCoordinate = entity.Size

	msgWelcome     = "Welcome to Tic-Tac-Toe"
	msgCellTaken   = "Invalid move. That cell is already taken. Try again."
	msgTie         = "It's a tie game!"
	msgFarewell    = "Thanks for playing!"
	promptPlayMore = "Do you want to play again?"
)

// inputProvider - supplies validated answers from the players.
type inputProvider interface {
	ReadRangedInt(ctx context.Context, prompt string, low, high int) (int, error)
	ReadYesNo(ctx context.Context, prompt string) (bool, error)
}

type GameManager struct {
	logger *slog.Logger
	input  inputProvider
	out    io.Writer

	newRoundID func() string
}

func NewGameManager(logger *slog.Logger, input inputProvider, out io.Writer) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		input:  input,
		out:    out,

		newRoundID: uuid.NewString,
	}
}

// Run - plays rounds until the players decline a replay.
// Closed input or a canceled context ends the session the same way and is not reported as an error.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	game := tictactoe.NewGame(that.newRoundID())

	for rounds := 1; ; rounds++ {
		log.Info("round started", "round_id", game.ID, "round", rounds)

		if err := that.playRound(ctx, game); err != nil {
			return that.finish(rounds, fmt.Errorf("failed to play round %s: %w", game.ID, err))
		}

		again, err := that.input.ReadYesNo(ctx, promptPlayMore)
		if err != nil {
			return that.finish(rounds, fmt.Errorf("failed to read replay answer: %w", err))
		}

		if !again {
			return that.finish(rounds, nil)
		}

		game.ID = that.newRoundID()
		game.Reset()
	}
}

// finish - says goodbye unless the session failed for a reason other than the players leaving.
func (that *GameManager) finish(rounds int, err error) error {
	log := that.logger.With("method", "finish")

	if err != nil && !isSessionEnd(err) {
		return err
	}

	if err != nil {
		log.Info("session interrupted", "error", err)
	}

	that.println(msgFarewell)
	log.Info("session finished", "rounds", rounds)

	return nil
}

// playRound - plays one round on a freshly reset game until it is won or tied.
func (that *GameManager) playRound(ctx context.Context, game *tictactoe.Game) error {
	log := that.logger.With("method", "playRound", "round_id", game.ID)

	that.println(msgWelcome)
	that.print(game.Board.Render())

	for {
		outcome, err := that.makeTurn(ctx, game)
		if err != nil {
			return err
		}

		that.print(game.Board.Render())

		switch outcome.Status {
		case entity.StatusWon:
			that.println(fmt.Sprintf("Player %s wins!", outcome.Winner))
			log.Info("round finished", "outcome", outcome.String(), "moves", game.Moves)
			return nil
		case entity.StatusTied:
			that.println(msgTie)
			log.Info("round finished", "outcome", outcome.String(), "moves", game.Moves)
			return nil
		case entity.StatusOngoing:
		}
	}
}

// makeTurn - asks the current player for a cell until an empty one is chosen.
func (that *GameManager) makeTurn(ctx context.Context, game *tictactoe.Game) (entity.Outcome, error) {
	log := that.logger.With("method", "makeTurn", "round_id", game.ID)

	for {
		player := game.Turn

		row, err := that.input.ReadRangedInt(ctx, fmt.Sprintf("Player %s, enter row", player), minCoordinate, maxCoordinate)
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to read row: %w", err)
		}

		col, err := that.input.ReadRangedInt(ctx, fmt.Sprintf("Player %s, enter column", player), minCoordinate, maxCoordinate)
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to read column: %w", err)
		}

		outcome, err := game.MakeTurn(row-1, col-1)
		if errors.Is(err, apperror.ErrCellOccupied) {
			log.Debug("cell rejected", "player", player.String(), "row", row, "col", col)
			that.println(msgCellTaken)
			continue
		}

		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn made", "player", player.String(), "row", row, "col", col, "moves", game.Moves)

		return outcome, nil
	}
}

func isSessionEnd(err error) bool {
	return errors.Is(err, apperror.ErrInputClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (that *GameManager) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *GameManager) println(text string) {
	that.print(text + "\n")
}

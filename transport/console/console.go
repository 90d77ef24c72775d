package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type line struct {
	text string
	err  error
}

// Console asks questions on out and reads answers line by line from in.
// Answers are read in the background so a blocked read never outlives a canceled context.
type Console struct {
	logger *slog.Logger
	out    io.Writer
	lines  chan line
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	console := &Console{
		logger: logger.With("component", "console"),
		out:    out,
		lines:  make(chan line),
	}

	go console.scan(in)

	return console
}

// ReadRangedInt - asks until the answer is an integer in [low, high].
func (that *Console) ReadRangedInt(ctx context.Context, prompt string, low, high int) (int, error) {
	log := that.logger.With("method", "ReadRangedInt")

	for {
		if err := that.printf("%s [%d - %d]: ", prompt, low, high); err != nil {
			return 0, err
		}

		answer, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(answer)
		if err != nil {
			log.Debug("not an integer", "answer", answer)
			if err = that.printf("You must enter a valid integer, not: %s\n", answer); err != nil {
				return 0, err
			}
			continue
		}

		if value < low || value > high {
			log.Debug("out of range", "value", value)
			if err = that.printf("You must enter a value between %d and %d.\n", low, high); err != nil {
				return 0, err
			}
			continue
		}

		return value, nil
	}
}

// ReadYesNo - asks until the answer is y, yes, n or no in any case.
func (that *Console) ReadYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		if err := that.printf("%s [Y/N]: ", prompt); err != nil {
			return false, err
		}

		answer, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		that.logger.Debug("not a yes/no answer", "answer", answer)
		if err = that.printf("You must answer Y or N.\n"); err != nil {
			return false, err
		}
	}
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("stopped waiting for input: %w", ctx.Err())
	case answer, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		if answer.err != nil {
			return "", fmt.Errorf("failed to read input: %w", answer.err)
		}
		return strings.TrimSpace(answer.text), nil
	}
}

func (that *Console) scan(in io.Reader) {
	defer close(that.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		that.lines <- line{text: scanner.Text()}
	}

	if err := scanner.Err(); err != nil {
		that.lines <- line{err: err}
	}
}

func (that *Console) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

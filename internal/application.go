package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs the game on the given terminal streams until the players stop.
func RunApp(logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	terminal := console.New(logger, in, out)
	gameManager := usecase.NewGameManager(logger, terminal, out)

	log.Info("Starting game session")
	if err := gameManager.Run(ctx); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	return nil
}

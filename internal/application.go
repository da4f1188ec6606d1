package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mnk-game/internal/config"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
	"github.com/rocketscienceinc/mnk-game/internal/pkg"
	"github.com/rocketscienceinc/mnk-game/transport/console"
)

// RunApp - runs interactive sessions over in and out until the player stops
// or the process receives SIGINT/SIGTERM.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	board := conf.Board.GetBoard()
	log.Info("Starting console", "board", board.String(), "bounds", board.Bounds)

	err := console.New(logger, in, out, board, pkg.GenerateSessionID).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

// RunReplay - replays the move script at path on board and prints the result.
func RunReplay(ctx context.Context, logger *slog.Logger, board entity.Board, path string, out io.Writer) error {
	log := logger.With("component", "replay")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	script, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open script: %w", err)
	}

	defer func() {
		if err = script.Close(); err != nil {
			log.Error("could not close script", "error", err)
		}
	}()

	session, err := console.Replay(ctx, logger, pkg.GenerateSessionID(), board, script)
	if err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}

	console.PrintResult(out, session)

	return nil
}

func withSignals(ctx context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

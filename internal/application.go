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

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs the console session on stdin and stdout until the player stops.
func RunApp(logger *slog.Logger, conf *config.Config) error {
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

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run plays sessions reading answers from in and writing the transcript to out.
// Closed input and cancellation end the session normally.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	cons := console.New(logger, in, out)

	var renderer entity.Renderer
	if !conf.HideBoard {
		renderer = cons
	}

	selectors := service.NewSelectors(
		service.NewComputerPlayer(logger),
		service.NewHumanPlayer(logger, cons),
	)
	gameManager := usecase.NewGameManager(logger, selectors, renderer, cons, conf.FirstPlayerFunc())

	err := gameManager.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		log.Info("Input closed, shutting down")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Application context canceled, shutting down")
		return nil
	default:
		return fmt.Errorf("game session failed: %w", err)
	}
}

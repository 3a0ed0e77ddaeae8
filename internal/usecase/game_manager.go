package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

var ErrNoSelector = errors.New("no move selector for player")

// Reporter tells the player how the session goes.
type Reporter interface {
	Welcome()
	ReportResult(state *entity.GameState)
	AskRetry(ctx context.Context) (bool, error)
	Goodbye()
}

type GameManager struct {
	logger *slog.Logger

	selectors   service.Selectors
	renderer    entity.Renderer
	reporter    Reporter
	firstPlayer func() entity.Player
}

// NewGameManager wires the turn loop. renderer may be nil to play without drawing the board.
func NewGameManager(
	logger *slog.Logger,
	selectors service.Selectors,
	renderer entity.Renderer,
	reporter Reporter,
	firstPlayer func() entity.Player,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		selectors:   selectors,
		renderer:    renderer,
		reporter:    reporter,
		firstPlayer: firstPlayer,
	}
}

// Run plays games until the player declines a retry.
func (that *GameManager) Run(ctx context.Context) error {
	for games := 1; ; games++ {
		that.reporter.Welcome()

		state, err := that.PlayGame(ctx)
		if err != nil {
			return fmt.Errorf("game %d failed: %w", games, err)
		}

		result := "draw"
		if winner, ok := state.Winner(); ok {
			result = winner.String()
		}
		that.logger.Info("game finished", "game", games, "turns", state.Turn(), "result", result)

		retry, err := that.reporter.AskRetry(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask for retry: %w", err)
		}

		if !retry {
			break
		}
	}

	that.reporter.Goodbye()

	return nil
}

// PlayGame runs one game from an empty board to its end and reports the result.
func (that *GameManager) PlayGame(ctx context.Context) (*entity.GameState, error) {
	state := entity.NewGameState(that.firstPlayer())
	state.ResetEmpty()

	log := that.logger.With("method", "PlayGame")
	log.Debug("game started", "first", state.CurrentPlayer())

	for !state.IsTerminal() {
		player := state.CurrentPlayer()

		selector, ok := that.selectors[player]
		if !ok {
			return state, fmt.Errorf("%w: %s", ErrNoSelector, player)
		}

		cell, err := selector.SelectMove(ctx, state)
		if err != nil {
			return state, fmt.Errorf("failed to select move for %s: %w", player, err)
		}

		if err = state.ApplyMove(cell, that.renderer); err != nil {
			return state, fmt.Errorf("failed to apply move for %s: %w", player, err)
		}

		log.Debug("move applied", "player", player, "cell", cell, "turn", state.Turn())
	}

	that.reporter.ReportResult(state)

	return state, nil
}

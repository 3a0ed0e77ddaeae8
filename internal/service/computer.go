package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type computerPlayer struct {
	logger *slog.Logger
}

func NewComputerPlayer(logger *slog.Logger) MoveSelector {
	return &computerPlayer{
		logger: logger.With("component", "computer"),
	}
}

func (that *computerPlayer) SelectMove(_ context.Context, state *entity.GameState) (int, error) {
	if state.IsTerminal() {
		return 0, fmt.Errorf("computer can't move: %w", apperror.ErrGameFinished)
	}

	if state.AvailableMoves().Len() == 0 {
		return 0, fmt.Errorf("computer can't move: %w", apperror.ErrNoAvailableMoves)
	}

	started := time.Now()
	scores := tictactoe.Analyze(state)
	best := tictactoe.Pick(state.CurrentPlayer(), scores)

	that.logger.Debug("move selected",
		"turn", state.Turn(),
		"cell", best.Cell,
		"score", best.Score,
		"candidates", scores,
		"elapsed", time.Since(started),
	)

	return best.Cell, nil
}

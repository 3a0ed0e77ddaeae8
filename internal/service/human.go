package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	humanPrompt = ` please select between 1 to 9 to mark your box:
1|2|3
-+-+-
4|5|6
-+-+-
7|8|9
`
	invalidChoice = "invalid choice please try again"
)

// Prompter is the line-oriented input the human plays through.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Say(message string)
}

type humanPlayer struct {
	logger   *slog.Logger
	prompter Prompter
}

func NewHumanPlayer(logger *slog.Logger, prompter Prompter) MoveSelector {
	return &humanPlayer{
		logger:   logger.With("component", "human"),
		prompter: prompter,
	}
}

// SelectMove asks until the answer names a free cell (1-9). Only input errors are returned.
func (that *humanPlayer) SelectMove(ctx context.Context, state *entity.GameState) (int, error) {
	for {
		answer, err := that.prompter.Ask(ctx, humanPrompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read human move: %w", err)
		}

		cell, ok := parseCell(answer, state.AvailableMoves())
		if ok {
			return cell, nil
		}

		that.logger.Debug("rejected input", "input", answer)
		that.prompter.Say(invalidChoice)
	}
}

// parseCell maps a 1-9 answer to a free board index. The answer must be digits only,
// so signs and surrounding spaces are rejected.
func parseCell(answer string, available entity.CellSet) (int, bool) {
	if answer == "" || strings.IndexFunc(answer, notDigit) >= 0 {
		return 0, false
	}

	choice, err := strconv.Atoi(answer)
	if err != nil {
		return 0, false
	}

	cell := choice - 1
	if !available.Has(cell) {
		return 0, false
	}

	return cell, true
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

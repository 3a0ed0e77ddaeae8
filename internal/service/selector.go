package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MoveSelector chooses a cell from state's available moves for the player to move.
// Implementations must not keep state after returning.
type MoveSelector interface {
	SelectMove(ctx context.Context, state *entity.GameState) (int, error)
}

// Selectors maps each player to its move selector.
type Selectors map[entity.Player]MoveSelector

func NewSelectors(computer, human MoveSelector) Selectors {
	return Selectors{
		entity.Computer: computer,
		entity.Human:    human,
	}
}

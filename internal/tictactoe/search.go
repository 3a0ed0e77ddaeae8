// Package tictactoe scores positions by exhaustive minimax from the Computer's point of view.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const winScore = 10

// MoveScore is the minimax value of playing Cell from the analysed state.
type MoveScore struct {
	Cell  int
	Score int
}

// Score returns the game-theoretic value of state for the Computer. depth counts plies from the
// search root, so quicker wins score higher and slower losses score less negative.
// The whole tree is explored; every child works on its own clone.
func Score(state *entity.GameState, depth int) int {
	if state.IsTerminal() {
		return terminalScore(state, depth)
	}

	maximizing := state.CurrentPlayer() == entity.Computer

	var best int
	for i, cell := range state.AvailableMoves().Cells() {
		child := state.Clone()
		if err := child.ApplyMove(cell, nil); err != nil {
			panic(fmt.Errorf("search: %w", err))
		}

		score := Score(child, depth+1)
		if i == 0 || (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}

	return best
}

func terminalScore(state *entity.GameState, depth int) int {
	winner, ok := state.Winner()
	switch {
	case !ok:
		return 0
	case winner == entity.Computer:
		return winScore - depth
	default:
		return depth - winScore
	}
}

// Analyze scores every available move of state, in ascending cell order.
func Analyze(state *entity.GameState) []MoveScore {
	mustBeSearchable(state)

	cells := state.AvailableMoves().Cells()
	scores := make([]MoveScore, 0, len(cells))
	for _, cell := range cells {
		child := state.Clone()
		if err := child.ApplyMove(cell, nil); err != nil {
			panic(fmt.Errorf("search: %w", err))
		}

		scores = append(scores, MoveScore{Cell: cell, Score: Score(child, 0)})
	}

	return scores
}

// BestMove picks the move with the strictly best score for the side to move: the greatest for the
// Computer, the least for the Human. Among equal scores the first in ascending cell order wins.
// Calling it on a finished game is a programming error and panics.
func BestMove(state *entity.GameState) int {
	return Pick(state.CurrentPlayer(), Analyze(state)).Cell
}

// Pick selects the best entry of scores for mover, as BestMove does. scores must not be empty.
func Pick(mover entity.Player, scores []MoveScore) MoveScore {
	best := scores[0]
	for _, candidate := range scores[1:] {
		if (mover == entity.Computer && candidate.Score > best.Score) ||
			(mover == entity.Human && candidate.Score < best.Score) {
			best = candidate
		}
	}

	return best
}

func mustBeSearchable(state *entity.GameState) {
	if state.IsTerminal() {
		panic(fmt.Errorf("search: %w", apperror.ErrGameFinished))
	}

	if state.AvailableMoves().Len() == 0 {
		panic(fmt.Errorf("search: %w", apperror.ErrNoAvailableMoves))
	}
}

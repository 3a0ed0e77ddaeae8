package entity

import (
	"fmt"
	"math/bits"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 9

// WinCombos lists the winning lines: rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the cells in row-major order.
type Board [BoardSize]Mark

// CellSet is a set of board indices.
type CellSet uint16

const allCells CellSet = 1<<BoardSize - 1

func (that CellSet) Has(index int) bool {
	return index >= 0 && index < BoardSize && that&(1<<index) != 0
}

func (that CellSet) Len() int {
	return bits.OnesCount16(uint16(that))
}

// Cells returns the members in ascending order.
func (that CellSet) Cells() []int {
	cells := make([]int, 0, that.Len())
	for i := 0; i < BoardSize; i++ {
		if that.Has(i) {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that CellSet) Remove(index int) CellSet {
	return that &^ (1 << index)
}

// Renderer is called by ApplyMove once the mark is placed and before the turn passes on.
type Renderer interface {
	RenderMove(state *GameState)
}

// GameState is a snapshot of one game: board, side to move, move count and free cells.
type GameState struct {
	board         Board
	currentPlayer Player
	turn          int
	available     CellSet
}

func NewGameState(first Player) *GameState {
	return &GameState{
		currentPlayer: first,
		available:     allCells,
	}
}

// Restore rebuilds a state from a board, deriving free cells and the move count from it.
func Restore(board Board, current Player) *GameState {
	state := &GameState{
		board:         board,
		currentPlayer: current,
	}
	for i, cell := range board {
		if cell == Empty {
			state.available |= 1 << i
		}
	}
	state.turn = BoardSize - state.available.Len()

	return state
}

func (that *GameState) Board() Board {
	return that.board
}

func (that *GameState) CurrentPlayer() Player {
	return that.currentPlayer
}

func (that *GameState) Turn() int {
	return that.turn
}

func (that *GameState) AvailableMoves() CellSet {
	return that.available
}

func (that *GameState) TogglePlayer() {
	that.currentPlayer = that.currentPlayer.Opponent()
}

func (that *GameState) HasWinner() bool {
	_, ok := that.winningMark()
	return ok
}

// Winner reports the owner of the first complete line in WinCombos order. Boards with more than
// one complete line are unreachable in play, so the order is not a tie-break rule.
func (that *GameState) Winner() (Player, bool) {
	mark, ok := that.winningMark()
	if !ok {
		return 0, false
	}
	return playerByMark(mark)
}

func (that *GameState) winningMark() (Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.board[combo[0]], that.board[combo[1]], that.board[combo[2]]
		if a != Empty && a == b && b == c {
			return a, true
		}
	}
	return Empty, false
}

// IsTerminal reports whether the game is over. No line can be complete before four moves.
func (that *GameState) IsTerminal() bool {
	if that.turn < 4 {
		return false
	}

	if that.HasWinner() {
		return true
	}

	return that.turn > 8
}

// ApplyMove places the current player's mark on index and passes the turn. render may be nil.
func (that *GameState) ApplyMove(index int, render Renderer) error {
	if !that.available.Has(index) {
		return fmt.Errorf("%w: cell %d is not available", apperror.ErrInvalidMove, index)
	}

	that.board[index] = that.currentPlayer.Mark()
	that.available = that.available.Remove(index)
	that.turn++

	if render != nil {
		render.RenderMove(that)
	}

	that.TogglePlayer()

	return nil
}

// ResetEmpty clears the board and frees every cell.
func (that *GameState) ResetEmpty() {
	that.board = Board{}
	that.available = allCells
	that.turn = 0
}

// Clone returns an independent copy; moves applied to it never touch the receiver.
func (that *GameState) Clone() *GameState {
	clone := *that
	return &clone
}

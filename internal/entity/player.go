package entity

import "math/rand"

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Player identifies one side of the game. The mark it plays with is an attribute, not its identity.
type Player uint8

const (
	Computer Player = iota
	Human
)

func (that Player) Mark() Mark {
	if that == Computer {
		return MarkO
	}
	return MarkX
}

func (that Player) Opponent() Player {
	if that == Computer {
		return Human
	}
	return Computer
}

func (that Player) String() string {
	if that == Computer {
		return "Computer"
	}
	return "You"
}

// playerByMark returns the player that places the given mark.
func playerByMark(mark Mark) (Player, bool) {
	switch mark {
	case Computer.Mark():
		return Computer, true
	case Human.Mark():
		return Human, true
	default:
		return 0, false
	}
}

func RandomPlayer() Player {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return Computer
	}
	return Human
}

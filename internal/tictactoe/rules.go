package tictactoe

import (
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
)

// WinningLines - rows, then columns, then diagonals. The order decides which
// line is reported first.
var WinningLines = [][3]entity.Space{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Evaluate - computes the outcome from the board contents alone.
func Evaluate(board *entity.Board) entity.Outcome {
	for _, line := range WinningLines {
		if token, ok := lineOwner(board, line); ok {
			return entity.Won(token)
		}
	}

	if board.Full() {
		return entity.Drawn()
	}

	return entity.InProgress()
}

// lineOwner - returns the token when all spaces of the line hold the same one.
func lineOwner(board *entity.Board, line [3]entity.Space) (entity.Token, bool) {
	occupants := make([]entity.Token, 0, len(line))
	for _, space := range line {
		if token, ok := board.Get(space); ok {
			occupants = append(occupants, token)
		}
	}

	distinct := lo.Uniq(occupants)
	if len(occupants) != len(line) || len(distinct) != 1 {
		return entity.Token{}, false
	}

	return distinct[0], true
}

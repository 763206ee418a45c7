package player

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/tictactoe"
)

var _ tictactoe.MoveSource = (*Random)(nil)

// Intn - returns a number in [0, n).
type Intn func(n int) int

// Random - picks uniformly among the empty spaces.
type Random struct {
	intn Intn
}

// NewRandom - intn may be nil, math/rand is used then.
func NewRandom(intn Intn) *Random {
	if intn == nil {
		intn = rand.Intn //nolint: gosec // it's ok
	}

	return &Random{intn: intn}
}

func (that *Random) Next(view *entity.Board, _ entity.Token) (entity.Space, bool) {
	available := view.Empty()
	if len(available) == 0 {
		return 0, false
	}

	return available[that.intn(len(available))], true
}

package player

import (
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/tictactoe"
)

var _ tictactoe.MoveSource = (*Seats)(nil)

// Seats - gives every token its own move source.
type Seats struct {
	sources map[entity.Token]tictactoe.MoveSource
}

func NewSeats() *Seats {
	return &Seats{
		sources: make(map[entity.Token]tictactoe.MoveSource),
	}
}

func (that *Seats) Seat(token entity.Token, source tictactoe.MoveSource) *Seats {
	that.sources[token] = source
	return that
}

func (that *Seats) Next(view *entity.Board, turn entity.Token) (entity.Space, bool) {
	source, ok := that.sources[turn]
	if !ok {
		return 0, false
	}

	return source.Next(view, turn)
}

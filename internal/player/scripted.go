package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/tictactoe"
)

var _ tictactoe.MoveSource = (*Scripted)(nil)

// Scripted - plays a fixed list of spaces in order, then runs dry.
type Scripted struct {
	moves []entity.Space
	next  int
}

func NewScripted(moves ...entity.Space) *Scripted {
	return &Scripted{
		moves: append([]entity.Space(nil), moves...),
	}
}

func (that *Scripted) Next(_ *entity.Board, _ entity.Token) (entity.Space, bool) {
	if that.next >= len(that.moves) {
		return 0, false
	}

	space := that.moves[that.next]
	that.next++

	return space, true
}

func (that *Scripted) Remaining() int {
	return len(that.moves) - that.next
}

// ParseMoves - parses a comma separated list such as "1,5,9".
func ParseMoves(value string) ([]entity.Space, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	fields := strings.Split(value, ",")
	moves := make([]entity.Space, 0, len(fields))
	for _, field := range fields {
		number, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidCell, field)
		}

		space := entity.Space(number)
		if !space.Valid() {
			return nil, fmt.Errorf("%w: space %d", apperror.ErrInvalidCell, number)
		}

		moves = append(moves, space)
	}

	return moves, nil
}

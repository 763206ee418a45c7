package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
)

// Space - one of the nine cells, numbered row-major from 1 to 9.
type Space int

const (
	FirstSpace Space = 1
	LastSpace  Space = 9
)

var spaces = []Space{1, 2, 3, 4, 5, 6, 7, 8, 9}

func (that Space) Valid() bool {
	return that >= FirstSpace && that <= LastSpace
}

// Spaces - returns every space of the board in order.
func Spaces() []Space {
	result := make([]Space, len(spaces))
	copy(result, spaces)
	return result
}

type Board struct {
	cells map[Space]Token
}

func NewBoard() *Board {
	return &Board{
		cells: make(map[Space]Token, len(spaces)),
	}
}

// Put - places token on space. Out of range, occupied spaces and zero tokens
// are rejected with ErrInvalidMove and the board is left unchanged.
func (that *Board) Put(space Space, token Token) error {
	if !space.Valid() {
		return fmt.Errorf("%w: %w: space %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, space)
	}

	if token.IsZero() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrInvalidToken)
	}

	if occupant, ok := that.cells[space]; ok {
		return fmt.Errorf("%w: %w: space %d holds %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, space, occupant)
	}

	that.cells[space] = token

	return nil
}

func (that *Board) Get(space Space) (Token, bool) {
	token, ok := that.cells[space]
	return token, ok
}

// Full - checks every space instead of counting puts.
func (that *Board) Full() bool {
	occupied := 0
	for _, space := range spaces {
		if _, ok := that.Get(space); ok {
			occupied++
		}
	}

	return occupied == len(spaces)
}

// Empty - returns the unoccupied spaces in order.
func (that *Board) Empty() []Space {
	result := make([]Space, 0, len(spaces))
	for _, space := range spaces {
		if _, ok := that.Get(space); !ok {
			result = append(result, space)
		}
	}

	return result
}

func (that *Board) Len() int {
	return len(that.cells)
}

func (that *Board) Clone() *Board {
	clone := NewBoard()
	for space, token := range that.cells {
		clone.cells[space] = token
	}

	return clone
}

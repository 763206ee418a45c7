package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
)

var (
	tokenX = MustToken("X")
	tokenO = MustToken("O")
)

func TestBoard_Put(t *testing.T) {
	t.Run("Put then Get", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X is put on space 5
		err := board.Put(5, tokenX)
		require.NoError(t, err)

		// Then: space 5 holds X and the others are empty
		token, ok := board.Get(5)
		require.True(t, ok)
		assert.Equal(t, tokenX, token)

		_, ok = board.Get(1)
		assert.False(t, ok)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with X on space 1
		board := NewBoard()
		require.NoError(t, board.Put(1, tokenX))

		// When: O tries the same space
		err := board.Put(1, tokenO)

		// Then: the move is rejected and X stays
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		token, _ := board.Get(1)
		assert.Equal(t, tokenX, token)
		assert.Equal(t, 1, board.Len())
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		board := NewBoard()

		for _, space := range []Space{0, 10, -1, 20} {
			err := board.Put(space, tokenX)

			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
		}

		assert.Equal(t, 0, board.Len())
	})

	t.Run("Zero token", func(t *testing.T) {
		board := NewBoard()

		err := board.Put(3, Token{})

		require.ErrorIs(t, err, apperror.ErrInvalidToken)
		_, ok := board.Get(3)
		assert.False(t, ok)
	})

	t.Run("Get out of range is empty", func(t *testing.T) {
		_, ok := NewBoard().Get(42)
		assert.False(t, ok)
	})
}

func TestBoard_Full(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		assert.False(t, NewBoard().Full())
	})

	t.Run("Full regardless of put order", func(t *testing.T) {
		// Given: all spaces filled in reverse order
		board := NewBoard()
		for space := LastSpace; space >= FirstSpace; space-- {
			require.NoError(t, board.Put(space, tokenO))
		}

		// Then: the board is full
		assert.True(t, board.Full())
		assert.Empty(t, board.Empty())
	})

	t.Run("Any single empty space makes it not full", func(t *testing.T) {
		for _, missing := range Spaces() {
			board := NewBoard()
			for _, space := range Spaces() {
				if space != missing {
					require.NoError(t, board.Put(space, tokenX))
				}
			}

			assert.False(t, board.Full(), "space %d left empty", missing)
			assert.Equal(t, []Space{missing}, board.Empty())
		}
	})
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board := NewBoard()
	require.NoError(t, board.Put(1, tokenX))
	clone := board.Clone()

	// When: the clone is changed
	require.NoError(t, clone.Put(2, tokenO))

	// Then: the original is untouched
	_, ok := board.Get(2)
	assert.False(t, ok)

	token, ok := clone.Get(1)
	require.True(t, ok)
	assert.Equal(t, tokenX, token)
}

func TestSpaces(t *testing.T) {
	spaces := Spaces()
	assert.Equal(t, []Space{1, 2, 3, 4, 5, 6, 7, 8, 9}, spaces)

	// Then: the returned slice is a copy
	spaces[0] = 42
	assert.Equal(t, FirstSpace, Spaces()[0])
}

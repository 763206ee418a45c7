package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
)

func TestRecord(t *testing.T) {
	startedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("New record is not finished", func(t *testing.T) {
		// Given: a new record
		record := NewRecord("123", []Token{tokenX, tokenO}, startedAt)

		// Then: it can not go into the history yet
		assert.False(t, record.IsFinished())
		require.ErrorIs(t, record.ConfirmFinished(), apperror.ErrGameNotFinished)
	})

	t.Run("Finish stores moves and outcome", func(t *testing.T) {
		// Given: a record and the moves of a won game
		record := NewRecord("123", []Token{tokenX, tokenO}, startedAt)
		moves := []Move{{1, tokenX}, {4, tokenO}, {2, tokenX}, {5, tokenO}, {3, tokenX}}

		// When: the game is finished
		record.Finish(moves, Won(tokenX), startedAt.Add(time.Minute))

		// Then: the record is complete
		require.NoError(t, record.ConfirmFinished())
		assert.Equal(t, moves, record.Moves)
		assert.Equal(t, startedAt.Add(time.Minute), record.FinishedAt)

		// Then: the board can be rebuilt from the moves
		board, err := record.Board()
		require.NoError(t, err)
		assert.Equal(t, 5, board.Len())

		token, ok := board.Get(3)
		require.True(t, ok)
		assert.Equal(t, tokenX, token)
	})

	t.Run("Board fails on a broken move list", func(t *testing.T) {
		record := NewRecord("123", []Token{tokenX, tokenO}, startedAt)
		record.Moves = []Move{{1, tokenX}, {1, tokenO}}

		_, err := record.Board()

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
)

// Move - a token placed on a space.
type Move struct {
	Space Space `json:"space"`
	Token Token `json:"token"`
}

// Record - history entry of a played game.
type Record struct {
	ID         string    `json:"id"`
	Tokens     []Token   `json:"tokens"`
	Moves      []Move    `json:"moves"`
	Outcome    Outcome   `json:"outcome"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewRecord(id string, tokens []Token, startedAt time.Time) *Record {
	return &Record{
		ID:        id,
		Tokens:    tokens,
		Moves:     []Move{},
		Outcome:   InProgress(),
		StartedAt: startedAt,
	}
}

// Finish - stores the moves and the final outcome of the game.
func (that *Record) Finish(moves []Move, outcome Outcome, finishedAt time.Time) {
	that.Moves = append(that.Moves[:0], moves...)
	that.Outcome = outcome
	that.FinishedAt = finishedAt
}

func (that *Record) IsFinished() bool {
	return that.Outcome.Decided()
}

// ConfirmFinished - only decided games belong in the history.
func (that *Record) ConfirmFinished() error {
	if !that.IsFinished() {
		return fmt.Errorf("%w: game %s", apperror.ErrGameNotFinished, that.ID)
	}

	return nil
}

// Board - replays the recorded moves on an empty board.
func (that *Record) Board() (*Board, error) {
	board := NewBoard()
	for i, move := range that.Moves {
		if err := board.Put(move.Space, move.Token); err != nil {
			return nil, fmt.Errorf("failed to replay move %d: %w", i+1, err)
		}
	}

	return board, nil
}

package entity

import (
	"fmt"
	"strings"
)

type OutcomeKind int

const (
	KindInProgress OutcomeKind = iota
	KindWinner
	KindDraw
)

const (
	inProgressText = "in-progress"
	drawText       = "draw"
	winnerPrefix   = "winner:"
)

// Outcome - status of a game: still in progress, won by a token or drawn.
// The zero value is in progress.
type Outcome struct {
	kind   OutcomeKind
	winner Token
}

func InProgress() Outcome {
	return Outcome{kind: KindInProgress}
}

func Won(token Token) Outcome {
	return Outcome{kind: KindWinner, winner: token}
}

func Drawn() Outcome {
	return Outcome{kind: KindDraw}
}

func (that Outcome) Kind() OutcomeKind {
	return that.kind
}

// Decided - true once the game has a winner or is drawn.
func (that Outcome) Decided() bool {
	return that.kind != KindInProgress
}

func (that Outcome) Winner() (Token, bool) {
	return that.winner, that.kind == KindWinner
}

func (that Outcome) IsDraw() bool {
	return that.kind == KindDraw
}

func (that Outcome) String() string {
	switch that.kind {
	case KindWinner:
		return winnerPrefix + that.winner.String()
	case KindDraw:
		return drawText
	default:
		return inProgressText
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	value := string(text)

	switch {
	case value == inProgressText:
		*that = InProgress()
	case value == drawText:
		*that = Drawn()
	case strings.HasPrefix(value, winnerPrefix):
		token, err := NewToken(strings.TrimPrefix(value, winnerPrefix))
		if err != nil {
			return fmt.Errorf("failed to parse winner: %w", err)
		}
		*that = Won(token)
	default:
		return fmt.Errorf("unknown outcome %q", value)
	}

	return nil
}

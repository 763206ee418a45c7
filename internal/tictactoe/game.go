package tictactoe

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
)

const minPlayers = 2

// MoveSource - supplies the space for the next move. view is a copy of the
// board, turn is the token about to be placed. ok is false when no move is
// available.
type MoveSource interface {
	Next(view *entity.Board, turn entity.Token) (space entity.Space, ok bool)
}

// Game - rules engine. It owns the board and the turn order; the outcome is
// never stored and is always evaluated from the board.
type Game struct {
	board  *entity.Board
	source MoveSource
	tokens []entity.Token
	turn   int
	moves  []entity.Move
}

func NewGame(source MoveSource, tokens ...entity.Token) (*Game, error) {
	return NewGameWithBoard(entity.NewBoard(), source, tokens...)
}

// NewGameWithBoard - starts a game from an existing position. The game takes
// ownership of board; a nil board starts empty.
func NewGameWithBoard(board *entity.Board, source MoveSource, tokens ...entity.Token) (*Game, error) {
	if err := validateTokens(tokens); err != nil {
		return nil, err
	}

	if board == nil {
		board = entity.NewBoard()
	}

	return &Game{
		board:  board,
		source: source,
		tokens: append([]entity.Token(nil), tokens...),
		moves:  []entity.Move{},
	}, nil
}

func validateTokens(tokens []entity.Token) error {
	if len(tokens) < minPlayers {
		return fmt.Errorf("%w: need at least %d tokens, got %d", apperror.ErrInvalidPlayers, minPlayers, len(tokens))
	}

	if lo.ContainsBy(tokens, func(token entity.Token) bool { return token.IsZero() }) {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPlayers, apperror.ErrInvalidToken)
	}

	if len(lo.Uniq(tokens)) != len(tokens) {
		return fmt.Errorf("%w: tokens must be distinct", apperror.ErrInvalidPlayers)
	}

	return nil
}

// MakeMove - asks the source for a space and places the current token there.
// An exhausted source changes nothing and returns ErrNoMove. A rejected space
// changes nothing either, and the same token stays on turn.
func (that *Game) MakeMove() error {
	token := that.Current()

	if that.source == nil {
		return apperror.ErrNoMove
	}

	space, ok := that.source.Next(that.board.Clone(), token)
	if !ok {
		return apperror.ErrNoMove
	}

	if err := that.board.Put(space, token); err != nil {
		return fmt.Errorf("%s failed to move: %w", token, err)
	}

	that.moves = append(that.moves, entity.Move{Space: space, Token: token})
	that.turn = (that.turn + 1) % len(that.tokens)

	return nil
}

func (that *Game) Outcome() entity.Outcome {
	return Evaluate(that.board)
}

// Current - token whose turn it is.
func (that *Game) Current() entity.Token {
	return that.tokens[that.turn]
}

func (that *Game) Tokens() []entity.Token {
	return append([]entity.Token(nil), that.tokens...)
}

// Board - a copy of the board; changes to it do not affect the game.
func (that *Game) Board() *entity.Board {
	return that.board.Clone()
}

func (that *Game) Moves() []entity.Move {
	return append([]entity.Move{}, that.moves...)
}

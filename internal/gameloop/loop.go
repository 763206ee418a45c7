package gameloop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/presenter"
)

const StoppedNotice = "Game stopped"

// Game - what the loop needs from the rules engine.
type Game interface {
	presenter.View
	MakeMove() error
}

type Loop struct {
	logger    *slog.Logger
	presenter presenter.Presenter
	output    presenter.Output
}

func New(logger *slog.Logger, presenter presenter.Presenter, output presenter.Output) *Loop {
	return &Loop{
		logger:    logger.With("component", "gameloop"),
		presenter: presenter,
		output:    output,
	}
}

// Play - draws the game, then makes moves until the outcome is decided, the
// run context or ctx stops it, or the move source runs dry. The board is drawn
// again after every applied move and a final notice is emitted.
func (that *Loop) Play(ctx context.Context, game Game, run RunContext) (entity.Outcome, error) {
	that.output.Print(that.presenter.Present(game))

	for !game.Outcome().Decided() {
		if err := ctx.Err(); err != nil {
			that.output.Notify(StoppedNotice)
			return game.Outcome(), fmt.Errorf("game interrupted: %w", err)
		}

		if !run.Run() {
			that.logger.Debug("run context stopped the game")
			that.output.Notify(StoppedNotice)
			return game.Outcome(), nil
		}

		mover := game.Current()
		err := game.MakeMove()

		switch {
		case errors.Is(err, apperror.ErrNoMove):
			that.logger.Debug("no move available", "token", mover.String())
			that.output.Notify(StoppedNotice)
			return game.Outcome(), nil
		case errors.Is(err, apperror.ErrInvalidMove):
			that.logger.Info("move rejected", "token", mover.String(), "error", err)
			that.output.Notify(err.Error())
			continue
		case err != nil:
			return game.Outcome(), fmt.Errorf("failed to make move: %w", err)
		}

		that.logger.Debug("move applied", "token", mover.String())
		that.output.Print(that.presenter.Present(game))
	}

	outcome := game.Outcome()
	that.output.Notify(FinalNotice(outcome))

	return outcome, nil
}

// FinalNotice - the line announced when a game ends.
func FinalNotice(outcome entity.Outcome) string {
	if winner, ok := outcome.Winner(); ok {
		return "Winner: " + winner.String()
	}

	if outcome.IsDraw() {
		return "Draw"
	}

	return StoppedNotice
}

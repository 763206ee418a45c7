package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/gameloop"
	"github.com/rocketscienceinc/tictactoe-kata/internal/tictactoe"
)

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, record *entity.Record) error
	GetByID(ctx context.Context, id string) (*entity.Record, error)
	List(ctx context.Context, limit int) ([]*entity.Record, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameLoopDep interface {
	Play(ctx context.Context, game gameloop.Game, run gameloop.RunContext) (entity.Outcome, error)
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepoDep
	loop     gameLoopDep

	now   func() time.Time
	newID func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep, loop gameLoopDep) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		loop:     loop,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Play - runs one game to its end and stores it in the history when it was
// decided. The record is returned even when the game was stopped early.
func (that *GameManager) Play(ctx context.Context, source tictactoe.MoveSource, tokens []entity.Token, run gameloop.RunContext) (*entity.Record, error) {
	game, err := tictactoe.NewGame(source, tokens...)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	record := entity.NewRecord(that.newID(), game.Tokens(), that.now())
	log := that.logger.With("gameID", record.ID)
	log.Info("game started", "tokens", len(tokens))

	outcome, err := that.loop.Play(ctx, game, run)
	record.Finish(game.Moves(), outcome, that.now())

	if err != nil {
		return record, fmt.Errorf("failed to play game: %w", err)
	}

	if err = record.ConfirmFinished(); err != nil {
		log.Info("game stopped before the end", "moves", len(record.Moves))
		return record, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, record); err != nil {
		return record, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game finished", "outcome", outcome.String(), "moves", len(record.Moves))

	return record, nil
}

func (that *GameManager) History(ctx context.Context, limit int) ([]*entity.Record, error) {
	records, err := that.gameRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return records, nil
}

func (that *GameManager) GetGameByID(ctx context.Context, id string) (*entity.Record, error) {
	record, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return record, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
)

var _ GameRepository = nopGame{}

// nopGame - used when the history is disabled. Nothing is kept.
type nopGame struct{}

func NewNopGameRepository() GameRepository {
	return nopGame{}
}

func (nopGame) CreateOrUpdate(_ context.Context, _ *entity.Record) error {
	return nil
}

func (nopGame) GetByID(_ context.Context, _ string) (*entity.Record, error) {
	return nil, apperror.ErrGameNotFound
}

func (nopGame) List(_ context.Context, _ int) ([]*entity.Record, error) {
	return []*entity.Record{}, nil
}

func (nopGame) DeleteByID(_ context.Context, _ string) error {
	return apperror.ErrGameNotFound
}

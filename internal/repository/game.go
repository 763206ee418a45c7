package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
)

const (
	gameKeyPrefix = "game:"
	historyKey    = "games:history"
)

// GameRepository - history of finished games, newest first.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, record *entity.Record) error
	GetByID(ctx context.Context, id string) (*entity.Record, error)
	List(ctx context.Context, limit int) ([]*entity.Record, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - ttl of zero keeps records forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, record *entity.Record) error {
	gameJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.Set(ctx, gameKey(record.ID), gameJSON, that.ttl)
	pipe.ZAdd(ctx, historyKey, redis.Z{
		Score:  float64(record.FinishedAt.UnixMilli()),
		Member: record.ID,
	})

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Record, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var record entity.Record
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &record, nil
}

// List - expired records still referenced by the history index are skipped.
func (that *dbGame) List(ctx context.Context, limit int) ([]*entity.Record, error) {
	if limit <= 0 {
		return []*entity.Record{}, nil
	}

	ids, err := that.client.ZRevRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read game history: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.Record{}, nil
	}

	keys := lo.Map(ids, func(id string, _ int) string { return gameKey(id) })

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	records := make([]*entity.Record, 0, len(values))
	for _, value := range values {
		data, ok := value.(string)
		if !ok {
			continue
		}

		var record entity.Record
		if err = json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game: %w", err)
		}

		records = append(records, &record)
	}

	return records, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	pipe := that.client.TxPipeline()
	deleted := pipe.Del(ctx, gameKey(id))
	pipe.ZRem(ctx, historyKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted.Val() == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
)

var _ GameRepository = (*memoryGame)(nil)

// memoryGame - used when redis is disabled. Records live as long as the process.
type memoryGame struct {
	mu      sync.RWMutex
	records map[string]entity.Record
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		records: make(map[string]entity.Record),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, record *entity.Record) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[record.ID] = copyRecord(record)
	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Record, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	record, ok := that.records[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	result := copyRecord(&record)
	return &result, nil
}

func (that *memoryGame) List(_ context.Context, limit int) ([]*entity.Record, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	records := make([]*entity.Record, 0, len(that.records))
	for _, record := range that.records {
		result := copyRecord(&record)
		records = append(records, &result)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].FinishedAt.After(records[j].FinishedAt)
	})

	if limit < 0 {
		limit = 0
	}

	if len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.records[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.records, id)
	return nil
}

func copyRecord(record *entity.Record) entity.Record {
	result := *record
	result.Tokens = append([]entity.Token(nil), record.Tokens...)
	result.Moves = append([]entity.Move(nil), record.Moves...)

	return result
}

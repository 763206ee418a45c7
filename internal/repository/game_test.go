package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/testing/suite"
)

var (
	tokenX = entity.MustToken("X")
	tokenO = entity.MustToken("O")
)

// newFinishedRecord - X wins the top row, minutes after the epoch of the test.
func newFinishedRecord(id string, minutes int) *entity.Record {
	startedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	record := entity.NewRecord(id, []entity.Token{tokenX, tokenO}, startedAt)
	record.Finish([]entity.Move{
		{Space: 1, Token: tokenX},
		{Space: 4, Token: tokenO},
		{Space: 2, Token: tokenX},
		{Space: 5, Token: tokenO},
		{Space: 3, Token: tokenX},
	}, entity.Won(tokenX), startedAt.Add(time.Duration(minutes)*time.Minute))

	return record
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, time.Hour)

	// Given: a finished game
	record := newFinishedRecord("123", 1)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, record)

	// Then: no error should be returned, and game is stored with a ttl
	require.NoError(t, err)
	assert.True(t, st.Redis.Exists("game:123"))
	assert.Equal(t, time.Hour, st.Redis.TTL("game:123"))

	members, err := st.Redis.ZMembers("games:history")
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, members)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		record := newFinishedRecord("123", 1)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, record))

		// When: GetByID is called with existing ID
		retrieved, err := gameRepo.GetByID(ctx, record.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, record, retrieved)

		board, err := retrieved.Board()
		require.NoError(t, err)
		assert.Equal(t, 5, board.Len())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: GetByID is called with non-existent ID
		retrieved, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrieved)
	})

	t.Run("GetByID_Expired", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Minute)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newFinishedRecord("123", 1)))

		// When: the ttl runs out
		st.Redis.FastForward(2 * time.Minute)

		// Then: the game is gone
		_, err := gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_List(t *testing.T) {
	t.Run("Newest first", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: three games finished one minute apart, stored out of order
		for _, minutes := range []int{2, 1, 3} {
			record := newFinishedRecord(fmt.Sprintf("game-%d", minutes), minutes)
			require.NoError(t, gameRepo.CreateOrUpdate(ctx, record))
		}

		// When: the two newest are listed
		records, err := gameRepo.List(ctx, 2)

		// Then: they come newest first
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "game-3", records[0].ID)
		assert.Equal(t, "game-2", records[1].ID)
	})

	t.Run("Zero limit", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newFinishedRecord("123", 1)))

		records, err := gameRepo.List(ctx, 0)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Expired games are skipped", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Minute)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newFinishedRecord("old", 1)))

		st.Redis.FastForward(2 * time.Minute)

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newFinishedRecord("new", 2)))

		records, err := gameRepo.List(ctx, 10)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "new", records[0].ID)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		record := newFinishedRecord("123", 1)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, record))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, record.ID)

		// Then: no error should be returned and the history forgets it
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, record.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)

		records, err := gameRepo.List(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_Docker(t *testing.T) {
	ctx, st := suite.NewDocker(t)

	gameRepo := NewGameRepository(st.Storage, time.Minute)

	// Given: a finished game stored in a real redis
	record := newFinishedRecord("docker", 1)
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, record))

	// When: it is read back
	retrieved, err := gameRepo.GetByID(ctx, record.ID)

	// Then: it matches
	require.NoError(t, err)
	assert.Equal(t, record, retrieved)
	require.NoError(t, gameRepo.DeleteByID(ctx, record.ID))
}

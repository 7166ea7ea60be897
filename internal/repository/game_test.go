package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
	"github.com/rocketscienceinc/dividebyhalf/testing/suite"
)

func newFinishedGame(t *testing.T) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("123", 3)
	require.NoError(t, err)

	game.AppendHistory(entity.HistoryRecord{Player: entity.PlayerOne, Divisor: 2, ValueBefore: 3, ValueAfter: 1})
	game.Value = 1
	game.Finish(entity.PlayerOne)

	return game
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	t.Run("Stores the game with the configured ttl", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// Given: a finished game
		game := newFinishedGame(t)

		// When: CreateOrUpdate is called
		err := gameRepo.CreateOrUpdate(ctx, game)

		// Then: the key exists and expires
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, "game:"+game.ID).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game
		game := newFinishedGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game matches including its history
		require.NoError(t, err)
		assert.Equal(t, game.ID, retrievedGame.ID)
		assert.Equal(t, game.Status, retrievedGame.Status)
		assert.Equal(t, game.Winner, retrievedGame.Winner)
		assert.Equal(t, game.History(), retrievedGame.History())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Empty(t, retrievedGame.ID)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		game := newFinishedGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		err := gameRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestGameRepository_Wins(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, 0)

	// Given: no games played, both counters read as zero
	wins, err := gameRepo.GetWins(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[entity.Player]int64{entity.PlayerOne: 0, entity.PlayerTwo: 0}, wins)

	// When: player two wins twice and player one once
	require.NoError(t, gameRepo.RecordWin(ctx, entity.PlayerTwo))
	require.NoError(t, gameRepo.RecordWin(ctx, entity.PlayerTwo))
	require.NoError(t, gameRepo.RecordWin(ctx, entity.PlayerOne))

	// Then: the counters add up
	wins, err = gameRepo.GetWins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), wins[entity.PlayerOne])
	assert.Equal(t, int64(2), wins[entity.PlayerTwo])
}

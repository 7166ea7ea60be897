package divide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/dividebyhalf/internal/apperror"
	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
)

func newGame(t *testing.T, value int) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("123", value)
	require.NoError(t, err)

	return game
}

func TestApplyMove(t *testing.T) {
	t.Run("Floors the quotient and always shrinks the value", func(t *testing.T) {
		for value := 2; value <= 1000; value++ {
			for _, divisor := range entity.Divisors {
				got, err := ApplyMove(value, divisor)
				require.NoError(t, err)

				assert.Equal(t, value/divisor, got)
				assert.Less(t, got, value)
			}
		}
	})

	t.Run("Rejects divisors outside the allowed set", func(t *testing.T) {
		for _, divisor := range []int{-2, 0, 1, 5, 10} {
			_, err := ApplyMove(100, divisor)
			assert.ErrorIs(t, err, apperror.ErrInvalidMove)
		}
	})

	t.Run("Rejects a value that can not be divided", func(t *testing.T) {
		_, err := ApplyMove(0, 2)
		assert.ErrorIs(t, err, apperror.ErrInvalidValue)
	})
}

func TestParseDivisor(t *testing.T) {
	t.Run("Accepts the literal divisors", func(t *testing.T) {
		for input, want := range map[string]int{"2": 2, "3": 3, "4": 4} {
			got, err := ParseDivisor(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("Rejects anything else and names the input", func(t *testing.T) {
		for _, input := range []string{"5", "", " 2", "02", "+3", "four", "2.0"} {
			_, err := ParseDivisor(input)
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			assert.Contains(t, err.Error(), input)
		}
	})
}

func TestMakeTurn(t *testing.T) {
	t.Run("Plays the reference game to a win for the last mover", func(t *testing.T) {
		// Given: a new game from 1000
		game := newGame(t, entity.DefaultStartValue)

		moves := []struct {
			player  entity.Player
			divisor int
			after   int
		}{
			{entity.PlayerOne, 2, 500},
			{entity.PlayerTwo, 4, 125},
			{entity.PlayerOne, 3, 41},
			{entity.PlayerTwo, 3, 13},
			{entity.PlayerOne, 4, 3},
			{entity.PlayerTwo, 2, 1},
		}

		// When: the players alternate through the scripted moves
		for _, move := range moves {
			record, err := MakeTurn(game, move.player, move.divisor)
			require.NoError(t, err)
			assert.Equal(t, move.after, record.ValueAfter)
		}

		// Then: player two produced 1 and wins, and the history chains
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.PlayerTwo, game.Winner)
		assert.Equal(t, entity.NoPlayer, game.Turn)

		history := game.History()
		require.Len(t, history, len(moves))
		assert.Equal(t, entity.HistoryRecord{Player: entity.PlayerOne, Divisor: 2, ValueBefore: 1000, ValueAfter: 500}, history[0])
		for i := 1; i < len(history); i++ {
			assert.Equal(t, history[i-1].ValueAfter, history[i].ValueBefore)
		}
		assert.Equal(t, game.Value, history[len(history)-1].ValueAfter)
	})

	t.Run("Landing on zero loses for the mover", func(t *testing.T) {
		// Given: a game at 3 with player one to move
		game := newGame(t, 3)

		// When: player one divides by 4
		_, err := MakeTurn(game, entity.PlayerOne, 4)
		require.NoError(t, err)

		// Then: the value is 0 and player two wins
		assert.Equal(t, 0, game.Value)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.PlayerTwo, game.Winner)
	})

	t.Run("Error on playing out of turn leaves the game unchanged", func(t *testing.T) {
		game := newGame(t, entity.DefaultStartValue)

		_, err := MakeTurn(game, entity.PlayerTwo, 2)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, 1000, game.Value)
		assert.Equal(t, entity.PlayerOne, game.Turn)
		assert.Empty(t, game.History())
	})

	t.Run("Error on invalid divisor leaves the game unchanged", func(t *testing.T) {
		game := newGame(t, entity.DefaultStartValue)

		_, err := MakeTurn(game, entity.PlayerOne, 5)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, 1000, game.Value)
		assert.Equal(t, entity.PlayerOne, game.Turn)
		assert.Empty(t, game.History())
	})

	t.Run("Error on a finished game", func(t *testing.T) {
		game := newGame(t, 2)
		_, err := MakeTurn(game, entity.PlayerOne, 2)
		require.NoError(t, err)

		_, err = MakeTurn(game, entity.PlayerTwo, 2)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Len(t, game.History(), 1)
	})
}

func TestWinner(t *testing.T) {
	assert.Equal(t, entity.PlayerOne, Winner(entity.PlayerOne, 1))
	assert.Equal(t, entity.PlayerTwo, Winner(entity.PlayerOne, 0))
	assert.Equal(t, entity.NoPlayer, Winner(entity.PlayerOne, 2))
}

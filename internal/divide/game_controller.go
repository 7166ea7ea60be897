package divide

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/dividebyhalf/internal/apperror"
	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
)

// ApplyMove - returns value divided by divisor, rounded down.
func ApplyMove(value, divisor int) (int, error) {
	if !IsValidDivisor(divisor) {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidMove, divisor)
	}

	if value < entity.TerminalValue {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidValue, value)
	}

	return value / divisor, nil
}

func IsValidDivisor(divisor int) bool {
	for _, allowed := range entity.Divisors {
		if divisor == allowed {
			return true
		}
	}
	return false
}

// ParseDivisor - accepts only the literal divisors, no signs, spaces or leading zeros.
func ParseDivisor(input string) (int, error) {
	for _, allowed := range entity.Divisors {
		if input == strconv.Itoa(allowed) {
			return allowed, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", apperror.ErrInvalidMove, input)
}

// MakeTurn - applies the divisor for player and resolves the outcome.
func MakeTurn(game *entity.Game, player entity.Player, divisor int) (entity.HistoryRecord, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.HistoryRecord{}, err
	}

	if game.Turn != player {
		return entity.HistoryRecord{}, apperror.ErrNotYourTurn
	}

	newValue, err := ApplyMove(game.Value, divisor)
	if err != nil {
		return entity.HistoryRecord{}, fmt.Errorf("invalid turn: %w", err)
	}

	record := entity.HistoryRecord{
		Player:      player,
		Divisor:     divisor,
		ValueBefore: game.Value,
		ValueAfter:  newValue,
	}

	game.Value = newValue
	game.AppendHistory(record)
	updateGameStatus(game, player)

	return record, nil
}

// Winner - returns who wins when mover produced value, or NoPlayer if the game goes on.
func Winner(mover entity.Player, value int) entity.Player {
	switch {
	case value == entity.TerminalValue:
		return mover
	case value < entity.TerminalValue:
		// dividing down to zero loses
		return mover.Opponent()
	default:
		return entity.NoPlayer
	}
}

func updateGameStatus(game *entity.Game, mover entity.Player) {
	if winner := Winner(mover, game.Value); winner != entity.NoPlayer {
		game.Finish(winner)
		return
	}

	game.Turn = mover.Opponent()
}

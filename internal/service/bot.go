package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
	"github.com/rocketscienceinc/dividebyhalf/internal/search"
)

var ErrSearcherNotSet = errors.New("bot has no move searcher")

// BotPlayer asks a game-tree search for every move.
type BotPlayer struct {
	logger   *slog.Logger
	name     string
	searcher *search.Negamax
}

func NewBotPlayer(logger *slog.Logger, name string, searcher *search.Negamax) *BotPlayer {
	return &BotPlayer{
		logger:   logger.With("component", "bot", "name", name),
		name:     name,
		searcher: searcher,
	}
}

func (that *BotPlayer) Name() string {
	return that.name
}

func (that *BotPlayer) ChooseMove(ctx context.Context, state entity.State) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if that.searcher == nil {
		return 0, ErrSearcherNotSet
	}

	startedAt := time.Now()

	divisor, err := that.searcher.BestMove(state)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose move: %w", err)
	}

	that.logger.Debug("move chosen", "value", state.Value, "divisor", divisor, "elapsed", time.Since(startedAt))

	return divisor, nil
}

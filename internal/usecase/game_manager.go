package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/dividebyhalf/internal/divide"
	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
)

// Player is a move provider for one seat.
type Player interface {
	Name() string
	ChooseMove(ctx context.Context, state entity.State) (int, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	RecordWin(ctx context.Context, winner entity.Player) error
}

// GameManager runs the turn loop. gameRepo may be nil, then nothing is persisted.
type GameManager struct {
	logger *slog.Logger
	out    io.Writer

	players  map[entity.Player]Player
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, out io.Writer, playerOne, playerTwo Player, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),
		out:    out,

		players: map[entity.Player]Player{
			entity.PlayerOne: playerOne,
			entity.PlayerTwo: playerTwo,
		},
		gameRepo: gameRepo,
	}
}

// Play - alternates the players until the game is finished and returns the history.
// On error the history played so far is returned along with it.
func (that *GameManager) Play(ctx context.Context, game *entity.Game) ([]entity.HistoryRecord, error) {
	log := that.logger.With("method", "Play", "gameID", game.ID)

	if err := game.ConfirmOngoingState(); err != nil {
		return game.History(), fmt.Errorf("can't play game: %w", err)
	}

	log.Info("game started", "value", game.Value)
	that.printRules(game.Value)
	that.saveGame(ctx, log, game)

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return game.History(), fmt.Errorf("game interrupted: %w", err)
		}

		that.printf("Value: %d\n\n", game.Value)

		if err := that.playTurn(ctx, log, game); err != nil {
			return game.History(), err
		}

		that.saveGame(ctx, log, game)
	}

	that.announceWinner(game)
	that.printf("\n")
	that.printHistoryTable(game.History())
	that.recordWin(ctx, log, game.Winner)

	log.Info("game finished", "winner", game.Winner.String(), "turns", game.Turns())

	return game.History(), nil
}

func (that *GameManager) playTurn(ctx context.Context, log *slog.Logger, game *entity.Game) error {
	mover := game.Turn

	player, ok := that.players[mover]
	if !ok || player == nil {
		return fmt.Errorf("no player for %s", mover)
	}

	divisor, err := player.ChooseMove(ctx, game.State())
	if err != nil {
		return fmt.Errorf("%s failed to choose move: %w", player.Name(), err)
	}

	that.printf("%s chooses: %d\n\n", player.Name(), divisor)

	// human input is validated before it gets here, so this is a broken provider
	record, err := divide.MakeTurn(game, mover, divisor)
	if err != nil {
		return fmt.Errorf("%s made an illegal move: %w", player.Name(), err)
	}

	log.Debug("turn applied",
		"player", record.Player.String(),
		"divisor", record.Divisor,
		"before", record.ValueBefore,
		"after", record.ValueAfter,
	)

	return nil
}

func (that *GameManager) announceWinner(game *entity.Game) {
	winner := that.players[game.Winner]
	loser := that.players[game.Winner.Opponent()]

	if game.Value == entity.TerminalValue {
		that.printf("Value %d, %s wins!\n", game.Value, winner.Name())
		return
	}

	that.printf("Value %d, %s divided down to zero and loses, %s wins!\n", game.Value, loser.Name(), winner.Name())
}

// saveGame - persistence problems are logged, the game itself goes on.
func (that *GameManager) saveGame(ctx context.Context, log *slog.Logger, game *entity.Game) {
	if that.gameRepo == nil {
		return
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		log.Error("failed to save game", "error", err)
	}
}

func (that *GameManager) recordWin(ctx context.Context, log *slog.Logger, winner entity.Player) {
	if that.gameRepo == nil {
		return
	}

	if err := that.gameRepo.RecordWin(ctx, winner); err != nil {
		log.Error("failed to record win", "error", err)
	}
}

func (that *GameManager) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

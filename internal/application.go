package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/dividebyhalf/internal/config"
	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
	"github.com/rocketscienceinc/dividebyhalf/internal/repository"
	"github.com/rocketscienceinc/dividebyhalf/internal/repository/storage"
	"github.com/rocketscienceinc/dividebyhalf/internal/search"
	"github.com/rocketscienceinc/dividebyhalf/internal/service"
	"github.com/rocketscienceinc/dividebyhalf/internal/usecase"
	"github.com/rocketscienceinc/dividebyhalf/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays one game on in/out and returns its history. When parent is cancelled or a
// signal arrives, the moves played so far are returned with an error wrapping context.Canceled.
func RunApp(parent context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) ([]entity.HistoryRecord, error) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var gameRepo repository.GameRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo = repository.NewGameRepository(redisStorage.Connection, conf.Redis.TTL)
	}

	input := service.NewLineReader(in)

	playerOne, err := newPlayer(logger, conf, conf.Game.PlayerOne, entity.PlayerOne, input, out)
	if err != nil {
		return nil, err
	}

	playerTwo, err := newPlayer(logger, conf, conf.Game.PlayerTwo, entity.PlayerTwo, input, out)
	if err != nil {
		return nil, err
	}

	game, err := entity.NewGame(entity.NewGameID(), conf.Game.StartValue)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	if conf.HTTPPort != "" && gameRepo != nil {
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			router := rest.NewRouter(logger, rest.NewGameHandler(logger, gameRepo))
			httpErr := rest.Start(ctx, conf.HTTPPort, router)
			if httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
			}
			httpErrCh <- httpErr
		}()
	}

	manager := usecase.NewGameManager(logger, out, playerOne, playerTwo, gameRepo)

	log.Info("Game created", "gameID", game.ID)

	history, err := manager.Play(ctx, game)
	if err != nil {
		return history, fmt.Errorf("game %s failed: %w", game.ID, err)
	}

	if conf.HTTPPort == "" || gameRepo == nil {
		return history, nil
	}

	log.Info("Game over, serving results until shutdown", "gameID", game.ID)

	select {
	case err = <-httpErrCh:
		if err != nil {
			return history, fmt.Errorf("HTTP server error: %w", err)
		}
	case <-ctx.Done():
		if err = <-httpErrCh; err != nil {
			return history, fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return history, nil
}

func newPlayer(logger *slog.Logger, conf *config.Config, kind string, seat entity.Player, input *service.LineReader, out io.Writer) (usecase.Player, error) {
	switch kind {
	case config.PlayerKindHuman:
		return service.NewHumanPlayer(humanName(conf, seat), input, out), nil
	case config.PlayerKindAI:
		ai, err := search.NewNegamax(conf.Game.SearchDepth, search.ClosenessScore)
		if err != nil {
			return nil, fmt.Errorf("could not create search: %w", err)
		}

		return service.NewBotPlayer(logger, botName(conf, seat), ai), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownPlayerKind, kind)
	}
}

// humanName and botName number the seats only when both share a kind.
func humanName(conf *config.Config, seat entity.Player) string {
	if conf.Game.PlayerOne == conf.Game.PlayerTwo {
		return fmt.Sprintf("Player %d", seat)
	}
	return "Player"
}

func botName(conf *config.Config, seat entity.Player) string {
	if conf.Game.PlayerOne == conf.Game.PlayerTwo {
		return fmt.Sprintf("AI %d", seat)
	}
	return "AI"
}

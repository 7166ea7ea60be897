package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
)

const (
	gameKeyPrefix = "game:"
	winsKey       = "stats:wins"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	RecordWin(ctx context.Context, winner entity.Player) error
	GetWins(ctx context.Context) (map[entity.Player]int64, error)
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - stores games as JSON. A zero ttl keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKeyPrefix+game.ID, gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}

func (that *dbGame) RecordWin(ctx context.Context, winner entity.Player) error {
	if err := that.client.HIncrBy(ctx, winsKey, strconv.Itoa(int(winner)), 1).Err(); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

func (that *dbGame) GetWins(ctx context.Context) (map[entity.Player]int64, error) {
	raw, err := that.client.HGetAll(ctx, winsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get wins: %w", err)
	}

	wins := map[entity.Player]int64{
		entity.PlayerOne: 0,
		entity.PlayerTwo: 0,
	}

	for field, value := range raw {
		player, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid player %q in wins: %w", field, err)
		}

		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid win count for player %d: %w", player, err)
		}

		wins[entity.Player(player)] = count
	}

	return wins, nil
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
	"github.com/rocketscienceinc/dividebyhalf/internal/repository"
)

type GameHandler interface {
	GetGame(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type gameReader interface {
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetWins(ctx context.Context) (map[entity.Player]int64, error)
}

type gameHandler struct {
	logger *slog.Logger
	games  gameReader
}

func NewGameHandler(logger *slog.Logger, games gameReader) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, ok := that.loadGame(w, r)
	if !ok {
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	game, ok := that.loadGame(w, r)
	if !ok {
		return
	}

	that.writeJSON(w, http.StatusOK, game.History())
}

func (that *gameHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	wins, err := that.games.GetWins(r.Context())
	if err != nil {
		that.logger.Error("failed to get wins", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response := make(map[string]int64, len(wins))
	for player, count := range wins {
		response[strconv.Itoa(int(player))] = count
	}

	that.writeJSON(w, http.StatusOK, map[string]any{"wins": response})
}

func (that *gameHandler) loadGame(w http.ResponseWriter, r *http.Request) (*entity.Game, bool) {
	id := chi.URLParam(r, "id")

	game, err := that.games.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrGameNotFound) {
		http.Error(w, "Game Not Found", http.StatusNotFound)
		return nil, false
	}

	if err != nil {
		that.logger.Error("failed to get game", "gameID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}

	return game, true
}

func (that *gameHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

package rest

import (
	"log/slog"
	"net/http"
)

type PingHandler interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
}

type pingHandler struct {
	logger *slog.Logger
}

func NewPingHandler(logger *slog.Logger) PingHandler {
	return &pingHandler{
		logger: logger.With("component", "ping"),
	}
}

// PingHandler - liveness check, answers while the game or its aftermath is being served.
func (that *pingHandler) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write response", "method", "PingHandler", "error", err)
		return
	}
}

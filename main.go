package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	app "github.com/rocketscienceinc/dividebyhalf/internal"
	"github.com/rocketscienceinc/dividebyhalf/internal/config"
	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
)

// main - is the entry point of the application. It initializes the configuration, logger, and plays one game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	history, err := app.RunApp(context.Background(), logger, conf, os.Stdin, os.Stdout)
	if err = checkRunError(logger, err); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}

	fmt.Println(formatHistory(history))
}

// checkRunError - an interrupted game is a normal shutdown, everything else is fatal.
func checkRunError(logger *slog.Logger, err error) error {
	if errors.Is(err, context.Canceled) {
		logger.Info("game interrupted", "reason", err.Error())
		return nil
	}

	return err
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. Stdout belongs to the game, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// formatHistory - player | divisor | value before | value after, one tuple per turn.
func formatHistory(history []entity.HistoryRecord) string {
	records := make([]string, 0, len(history))
	for _, record := range history {
		records = append(records, record.String())
	}

	return "[" + strings.Join(records, ", ") + "]"
}

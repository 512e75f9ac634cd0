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

	"github.com/rocketscienceinc/focus-backend/internal/config"
	"github.com/rocketscienceinc/focus-backend/internal/entity"
	"github.com/rocketscienceinc/focus-backend/internal/repository"
	"github.com/rocketscienceinc/focus-backend/internal/repository/storage"
	"github.com/rocketscienceinc/focus-backend/internal/usecase"
	"github.com/rocketscienceinc/focus-backend/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one console match on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the match manager and console, and blocks until the session
// ends or the process is signalled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	var results repository.ResultRepository

	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		results = repository.NewResultRepository(redisStorage)
	}

	matchManager := usecase.NewMatchManager(logger, results)

	match, err := matchManager.Start(
		entity.Player{ID: conf.Players.First.ID, Color: conf.Players.First.Color},
		entity.Player{ID: conf.Players.Second.ID, Color: conf.Players.Second.Color},
	)
	if err != nil {
		return fmt.Errorf("could not start match: %w", err)
	}

	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "matchID", match.ID)
		consoleErrCh <- console.New(logger, matchManager, match, out, conf.Console.NoColor).Serve(ctx, in)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console closed")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// Package main serves one of the tutorial apps, selected by APP_NAME.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"crud-tutorials/config"
	"crud-tutorials/internal/repository"
	"crud-tutorials/internal/security"
	"crud-tutorials/internal/transport/http/server"
	"crud-tutorials/internal/usecase"
	"crud-tutorials/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	deps := server.Deps{Log: log, Config: cfg}
	if cfg.NeedsStore() {
		repo, err := repository.New(ctx, cfg.Database.Driver, log, cfg)
		if err != nil {
			log.Errorw("repository initialization error", "error", err)
			return
		}
		if err := repo.OnStart(ctx); err != nil {
			log.Errorw("repository start error", "error", err)
			return
		}
		defer func() {
			_ = repo.OnStop(context.Background())
		}()

		hasher := security.NewHasher(cfg.Auth.BcryptCost)
		deps.Usecase = usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout, hasher)
	}

	serv, err := server.New(deps)
	if err != nil {
		log.Errorw("server initialization error", "error", err)
		return
	}

	go func() {
		log.Infow("listening", "app", cfg.App.Name, "addr", cfg.ServerAddr())
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}

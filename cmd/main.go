// Package main wires the HTTP server of the project calendar service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/blackgirlbytes/github-calendar-next/internal/transport/http/server/handlers-fiber"
	"github.com/blackgirlbytes/github-calendar-next/internal/usecase"

	"github.com/blackgirlbytes/github-calendar-next/config"
	"github.com/blackgirlbytes/github-calendar-next/internal/repository"
	"github.com/blackgirlbytes/github-calendar-next/internal/transport/http/middleware"
	"github.com/blackgirlbytes/github-calendar-next/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
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

	repo, err := repository.New(ctx, "github", log, cfg)
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

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, timeout, cfg.GitHub)

	serv := fiber.New(fiber.Config{
		AppName:      "github-calendar-next",
		ErrorHandler: handlers_fiber.ErrorHandler,
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log.Named("http")))

	serv.Get("/healthz", handlers_fiber.Healthz)

	auth := middleware.NewAuthenticator(cfg.Auth.Method, cfg.Auth.APIKey)
	h := handlers_fiber.NewHandler(log.Named("handler"), uc)
	handlers_fiber.Register(serv, h, middleware.RequireAuth(auth, log.Named("auth")))

	go func() {
		log.Infow("server listening", "addr", cfg.ServerAddr(), "auth", cfg.Auth.Method)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
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

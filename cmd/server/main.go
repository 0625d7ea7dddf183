package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99minutos/identity-service/docs"
	"github.com/99minutos/identity-service/internal/api"
	"github.com/99minutos/identity-service/internal/app"
	"github.com/99minutos/identity-service/internal/infrastructure/config"
	"github.com/99minutos/identity-service/pkg/logger"
)

// @title                       Identity Service API
// @version                     1.0
// @description                 Create, fetch and update user accounts.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "identity-service",
	})

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close dependencies")
		}
	}()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	e := api.NewRouter(api.Dependencies{
		Create:    a.Create,
		Get:       a.Get,
		Update:    a.Update,
		Readiness: a.Readiness,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Bool("auth", cfg.AuthEnabled()).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("http server stopped")
}

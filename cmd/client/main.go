package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rateorant/client-gateway/internal/api"
	"github.com/rateorant/client-gateway/internal/core/ports"
	"github.com/rateorant/client-gateway/internal/core/service"
	"github.com/rateorant/client-gateway/internal/infrastructure/backend"
	"github.com/rateorant/client-gateway/internal/infrastructure/cache"
	"github.com/rateorant/client-gateway/internal/infrastructure/config"
	"github.com/rateorant/client-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is for local development; absence is not an error.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Get()
		bootLog.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(cfg.LogLevel, cfg.Env)

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	var users ports.UserAPI = backend.NewUsers(client)
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.Connect(ctx, cache.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to redis")
		}
		defer redisClient.Close()
		users = cache.NewUsers(redisClient, users, cfg.Redis.UserTTL, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("user-profile cache enabled")
	}

	backends := service.Backends{
		Restaurants:   backend.NewRestaurants(client),
		Reviews:       backend.NewReviews(client),
		Favorites:     backend.NewFavorites(client),
		Categories:    backend.NewCategories(client),
		Notifications: backend.NewNotifications(client),
		Users:         users,
		Auth:          backend.NewAuth(client),
	}

	e := api.NewRouter(api.Dependencies{
		Sessions: service.NewRegistry(backends, log),
		Details:  service.NewDetails(backends, log),
		Forms:    service.NewForms(backends, log),
		Auth:     service.NewAuth(backends.Auth),
		Logger:   log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("backend", cfg.Backend.BaseURL).
			Msg("starting client gateway")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

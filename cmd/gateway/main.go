package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/buy01/storefront-gateway/docs"
	"github.com/buy01/storefront-gateway/internal/api"
	"github.com/buy01/storefront-gateway/internal/api/handler"
	"github.com/buy01/storefront-gateway/internal/core/service"
	"github.com/buy01/storefront-gateway/internal/core/session"
	"github.com/buy01/storefront-gateway/internal/infrastructure/config"
	"github.com/buy01/storefront-gateway/internal/infrastructure/db/redis"
	"github.com/buy01/storefront-gateway/internal/infrastructure/upstream"
	"github.com/buy01/storefront-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        buy01 Storefront Gateway
// @version      1.0
// @description  Session-aware gateway in front of the buy01 storefront API.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	appLog.Info().Str("env", cfg.Env).Msg("starting storefront gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLog.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	client := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, appLog)
	authAPI := upstream.NewAuthClient(client)
	mediaAPI := upstream.NewMediaClient(client)
	storeAPI := upstream.NewStorefrontClient(client)

	store := session.NewStore(redis.NewSessionMirror(rdb), appLog)
	creds := service.NewCredentialExchange(authAPI, store, appLog)
	flow := service.NewSignupFlow(creds, mediaAPI, appLog)

	e := api.NewRouter(api.Deps{
		Store:    store,
		Creds:    creds,
		Flow:     flow,
		Products: storeAPI,
		Carts:    storeAPI,
		Orders:   storeAPI,
		Redis:    rdb,
		Upstream: client,
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
		Log: appLog,
	})

	go func() {
		appLog.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	appLog.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLog.Error().Err(err).Msg("forced shutdown")
	}
	appLog.Info().Msg("server exited")
}

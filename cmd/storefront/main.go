package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/soyelectronico/storefront/internal/api"
	"github.com/soyelectronico/storefront/internal/core/ports"
	"github.com/soyelectronico/storefront/internal/core/service"
	"github.com/soyelectronico/storefront/internal/infrastructure/remote"
	"github.com/soyelectronico/storefront/internal/infrastructure/store"
	"github.com/soyelectronico/storefront/internal/pkg/config"
	"github.com/soyelectronico/storefront/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	credStore, err := newCredentialStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open credential store")
	}

	client := remote.NewHTTPClient(cfg.HTTPTimeout)
	users := remote.NewUserGateway(cfg.UserServiceURL, client, log)
	catalog := remote.NewCatalogGateway(cfg.CatalogServiceURL, client, log)
	orders := remote.NewOrderGateway(cfg.OrderServiceURL, client, log)

	sessions := service.NewSessionManager(users, credStore, log)
	catalogSvc := service.NewCatalogService(catalog, log)
	purchases := service.NewPurchaseService(orders, sessions, catalogSvc, log)
	admin := service.NewAdminService(catalog, sessions, catalogSvc, log)

	// Restore a previously persisted session before taking traffic.
	sessions.Bootstrap(ctx)

	e := api.NewRouter(api.Dependencies{
		Sessions:  sessions,
		Catalog:   catalogSvc,
		Purchases: purchases,
		Admin:     admin,
		HealthTargets: map[string]string{
			"users":   cfg.UserServiceURL,
			"catalog": cfg.CatalogServiceURL,
			"orders":  cfg.OrderServiceURL,
		},
		HTTPClient: client,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func newCredentialStore(ctx context.Context, cfg *config.Config) (ports.CredentialStore, error) {
	if cfg.Store.Backend == "redis" {
		client, err := store.Connect(ctx, store.RedisConfig{
			Addr: cfg.Store.RedisAddr,
			DB:   cfg.Store.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	}
	return store.NewFileStore(cfg.Store.Dir)
}

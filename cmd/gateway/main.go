package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/routes"
	adminsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/admin"
	authsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/auth"
	cartsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/cart"
	catalogsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/catalog"
	maintenancesvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/maintenance"
	orderssvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/orders"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth/session"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/config"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/env"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/metrics"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "gateway"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "gateway",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	upstreamClient, err := upstream.NewClient(cfg.Upstream.BaseURL, upstream.WithTimeout(cfg.Upstream.Timeout))
	if err != nil {
		logg.Error(context.Background(), "failed to build upstream client", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	authSvc := authsvc.NewService(upstreamClient, nil, logg)
	if cfg.Google.ClientID != "" {
		googleVerifier, err := authsvc.NewGoogleVerifier(context.Background(), cfg.Google.ClientID)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap google verifier", err)
			os.Exit(1)
		}
		authSvc = authsvc.NewService(upstreamClient, googleVerifier, logg)
	} else {
		logg.Warn(context.Background(), "google client id not configured, google sign-in disabled")
	}

	registry := prometheus.NewRegistry()
	sessionMetrics := metrics.NewSessionMetrics(registry)

	store := session.NewCookieStore(session.CookieOptions{
		Name:   cfg.Session.CookieName,
		Domain: cfg.Session.CookieDomain,
		Secure: cfg.Session.CookieSecure,
	})

	deps := routes.Deps{
		Config:      cfg,
		Logger:      logg,
		Store:       store,
		Upstream:    upstreamClient,
		Auth:        authSvc,
		Catalog:     catalogsvc.NewService(upstreamClient, redisClient, logg),
		Cart:        cartsvc.NewService(upstreamClient),
		Orders:      orderssvc.NewService(upstreamClient),
		Admin:       adminsvc.NewService(upstreamClient),
		Maintenance: maintenancesvc.NewService(upstreamClient, redisClient, cfg.Maintenance.CacheTTL, logg),
		Verdicts:    redisClient,
		Metrics:     sessionMetrics,
		Registry:    registry,
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"upstream": cfg.Upstream.BaseURL,
	})
	logg.Info(ctx, "starting storefront gateway")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(deps),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "gateway stopped unexpectedly", err)
		os.Exit(1)
	}
}

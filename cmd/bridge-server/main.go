package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"authbridge/internal/auth/biometric"
	"authbridge/internal/auth/cache"
	authmetrics "authbridge/internal/auth/metrics"
	"authbridge/internal/auth/models"
	"authbridge/internal/auth/orchestrator"
	"authbridge/internal/auth/provider"
	"authbridge/internal/auth/provider/msal"
	"authbridge/internal/bridge"
	"authbridge/internal/bridge/handler"
	"authbridge/internal/platform/config"
	"authbridge/internal/platform/httpserver"
	"authbridge/internal/platform/logger"
	"authbridge/internal/platform/middleware"
	platformredis "authbridge/internal/platform/redis"
)

// main wires the demo shell: the shared orchestrator behind the plugin
// operation surface, served over HTTP. Business logic lives in the internal
// auth packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Env)
	defer log.Sync()

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}

	var store cache.Store
	if redisClient != nil {
		store = cache.NewRedisStore(redisClient, cfg.CacheTTL)
		log.Info("durable token cache enabled")
	} else {
		store = cache.NewInMemoryStore()
	}
	persister := cache.NewPersister(store)

	factory := func(c models.Configuration) (provider.Client, error) {
		return msal.New(c, persister)
	}

	// The server shell has no secure enclave; the biometric gate always
	// reports no capability and login falls through to ordinary handling.
	orch := orchestrator.New(factory, biometric.Noop{}, log, authmetrics.New())
	plugin := bridge.NewPlugin(orch)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger(log))
	handler.New(plugin, log).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting bridge server", zap.String("addr", cfg.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("graceful shutdown failed", zap.Error(err))
	}
	if redisClient != nil {
		redisClient.Close()
	}
}

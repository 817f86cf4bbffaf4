package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/go-sim-archverify/config"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/bootstrap"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/repository"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/service"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/storage/postgres"
)

const serviceName = "archverify-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg.App.Environment, cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		store service.ReportStore
		cache service.ResultCache
		pool  *pgxpool.Pool
		rdb   *redis.Client
	)

	if cfg.Database.Enabled {
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			slog.Error("database unavailable", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		repo := repository.NewReportRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			slog.Error("failed to create schema", "error", err)
			os.Exit(1)
		}
		store = repo

		pool, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
		if err != nil {
			slog.Warn("health pool unavailable", "error", err)
		} else {
			defer pool.Close()
		}
	}

	if cfg.Redis.Enabled {
		rdb, err = bootstrap.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			slog.Warn("redis unavailable, result caching disabled", "error", err)
		} else {
			defer rdb.Close()
			cache = repository.NewResultCache(rdb, cfg.Redis.CacheTTL)
		}
	}

	pipeline := service.NewPipeline(bootstrap.PipelineOptions(cfg, cache, store))

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateRPS:     cfg.Server.RateRPS,
		RateBurst:   cfg.Server.RateBurst,
		DB:          pool,
		Redis:       rdb,
		Pipeline:    pipeline,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", srv.Addr, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

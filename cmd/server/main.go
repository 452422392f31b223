// @title        Sample App API
// @version      1.0
// @description  Sessions, remember-me login, follow graph and micropost feed.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rimonomega/sampleapp/internal/api"
	mongodb "github.com/rimonomega/sampleapp/internal/infrastructure/db/mongo"
	redisdb "github.com/rimonomega/sampleapp/internal/infrastructure/db/redis"
	"github.com/rimonomega/sampleapp/internal/infrastructure/queue"
	"github.com/rimonomega/sampleapp/internal/pkg/config"
	"github.com/rimonomega/sampleapp/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "sampleapp",
		Env:     cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	auditCtx, stopAudit := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, mongodb.NewAuthEventRepository(db), log)
	dispatcher.Start(auditCtx)

	e, err := api.NewRouter(api.Dependencies{
		DB:     db,
		Redis:  rdb,
		Audit:  dispatcher,
		Config: cfg,
		Logger: log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// No request can enqueue any more; flush what is buffered.
	stopAudit()
	dispatcher.Wait()
}

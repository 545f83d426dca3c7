package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/logging"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// @title Product Catalog API
// @version 1.0
// @description REST API for managing product records.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load("")
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("invalid configuration")
	}
	log := logging.New(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// released once the HTTP server has drained
	var closers []func() error

	productRepo, err := openRepository(cfg.Database, log, &closers)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}

	limiter, err := newLimiter(ctx, cfg, &closers)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build rate limiter")
	}

	r := router.NewRouter(router.Options{
		Products:   handlers.NewProductHandler(productRepo, log, cfg.Cache.MaxAge),
		Logger:     log,
		Limiter:    limiter,
		TrustProxy: cfg.Server.TrustProxy,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	shutdownOps := map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			log.Info().Msg("graceful shutdown initiated")
			cancel()
			err := srv.Shutdown(ctx)
			for _, closeFn := range closers {
				err = errors.Join(err, closeFn())
			}
			return err
		},
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("driver", cfg.Database.Driver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.Server.ShutdownTimeout, shutdownOps)
	exitCode := <-wait
	log.Info().Int("exit_code", exitCode).Msg("application exited")
	os.Exit(exitCode)
}

func openRepository(cfg config.DatabaseConfig, log zerolog.Logger, closers *[]func() error) (repo.ProductRepository, error) {
	if cfg.Driver == "memory" {
		return repo.NewInMemoryProductRepository(), nil
	}

	database, err := db.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	*closers = append(*closers, func() error { return db.Close(database) })
	return repo.NewGormProductRepository(database), nil
}

func newLimiter(ctx context.Context, cfg config.Config, closers *[]func() error) (rl.Limiter, error) {
	if !cfg.RateLimit.Enabled {
		return nil, nil
	}

	if cfg.RateLimit.Backend == "redis" {
		redisService, err := redissvc.NewRedisService(ctx, cfg.Redis.Addr)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, redisService.Close)
		return rl.NewRedisLimiter(redisService.Rdb(), cfg.RateLimit.Burst, cfg.RateLimit.Window), nil
	}

	limiter := rl.NewMemoryLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop(ctx, time.Minute, 5*time.Minute)
	return limiter, nil
}

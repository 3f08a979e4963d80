package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"restaurant-api/config"
	"restaurant-api/internal/app"
	"restaurant-api/internal/cache"
	"restaurant-api/internal/database"
	"restaurant-api/internal/database/migrations"
	"restaurant-api/internal/server"
	"restaurant-api/internal/transport/dto"

	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

// resources tracks everything serve opens so it can be released in reverse order.
type resources struct {
	logCloser io.Closer
	pool      *pgxpool.Pool
	rdb       *redis.Client
	store     cache.Store
}

func (r *resources) Close() error {
	var result *multierror.Error
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close cache: %w", err))
		}
	}
	if r.rdb != nil {
		if err := r.rdb.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close redis: %w", err))
		}
	}
	if r.pool != nil {
		r.pool.Close()
	}
	if r.logCloser != nil {
		if err := r.logCloser.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close log file: %w", err))
		}
	}
	return result.ErrorOrNil()
}

func serve(ctx context.Context) (err error) {
	cfg, logCloser, err := bootstrap()
	if err != nil {
		return err
	}
	res := &resources{logCloser: logCloser}
	defer func() {
		if closeErr := res.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr).ErrorOrNil()
		}
	}()

	res.pool, err = database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		return err
	}

	if cfg.DB.AutoMigrate {
		if err := migrations.Up(ctx, res.pool); err != nil {
			slog.Error("Failed to apply migrations", slog.Any("error", err))
			return err
		}
	}

	res.rdb, res.store = openCache(ctx, cfg)

	validate, err := dto.NewValidator()
	if err != nil {
		return err
	}

	srv := server.NewServer(app.New(cfg, res.pool, res.rdb, res.store, validate))

	if err := runServices(ctx, srv, res.store); err != nil {
		slog.Error("Server stopped with error", slog.Any("error", err))
		return err
	}
	slog.Info("Application gracefully stopped")
	return nil
}

// runner is a long-running service that stops when its context is done.
type runner interface {
	Run(ctx context.Context) error
}

// runServices runs srv together with the cache's background loop, if the
// store has one. The first failure cancels the rest.
func runServices(ctx context.Context, srv runner, store cache.Store) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	if r, ok := store.(cache.Runner); ok {
		g.Go(func() error { return r.Run(gctx) })
	}
	return g.Wait()
}

// openCache builds the response cache. An unreachable cache backend is not
// fatal: the API starts without caching.
func openCache(ctx context.Context, cfg *config.Config) (*redis.Client, cache.Store) {
	if !cfg.Cache.Enabled {
		slog.Info("Response cache disabled")
		return nil, nil
	}

	var rdb *redis.Client
	if cfg.Cache.Backend == config.CacheBackendRedis {
		var err error
		rdb, err = database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, continuing without response cache", slog.Any("error", err))
			return nil, nil
		}
	}

	store, err := cache.New(cfg.Cache, rdb)
	if err != nil {
		slog.Warn("Response cache misconfigured, continuing without it", slog.Any("error", err))
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, nil
	}
	return rdb, store
}

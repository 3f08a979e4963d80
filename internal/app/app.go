// Package app wires the long-lived dependencies shared by the HTTP layer.
package app

import (
	"restaurant-api/config"
	"restaurant-api/internal/cache"
	"restaurant-api/internal/metrics"
	"restaurant-api/internal/services"
	"restaurant-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil unless the redis cache backend is in use
	Cache       cache.Store   // nil when caching is disabled
	Validator   *validator.Validate
	Metrics     *metrics.Metrics // nil when metrics are disabled

	MenuService    services.MenuService
	SubmenuService services.SubmenuService
	DishService    services.DishService
}

// New builds the services on top of the PostgreSQL repositories.
func New(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, store cache.Store, validate *validator.Validate) *Application {
	counts := postgres.NewCountRepo(pool)
	a := &Application{
		Config:         cfg,
		DBPool:         pool,
		RedisClient:    rdb,
		Cache:          store,
		Validator:      validate,
		MenuService:    services.NewMenuService(pool, postgres.NewMenuRepo(pool), counts),
		SubmenuService: services.NewSubmenuService(pool, postgres.NewSubmenuRepo(pool), counts),
		DishService:    services.NewDishService(postgres.NewDishRepo(pool)),
	}
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New()
	}
	return a
}

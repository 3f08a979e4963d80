package routes

import (
	"context"
	"log/slog"

	"restaurant-api/internal/api/handlers"
	"restaurant-api/internal/app"
	"restaurant-api/internal/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	apiV1 := router.Group("/api/v1")

	var readCache gin.HandlerFunc
	if app.Cache != nil {
		readCache = cache.ReadThrough(app.Cache, app.Config.Cache.Prefix)
		if app.Config.Cache.InvalidateOnWrite {
			apiV1.Use(cache.InvalidateOnWrite(app.Cache))
		}
		slog.Info("Response cache enabled",
			slog.String("backend", app.Config.Cache.Backend),
			slog.Duration("ttl", app.Config.Cache.TTL),
			slog.Bool("invalidate_on_write", app.Config.Cache.InvalidateOnWrite))
	}

	menuHandler := handlers.NewMenuHandler(app.MenuService, app.Validator)
	submenuHandler := handlers.NewSubmenuHandler(app.SubmenuService, app.Validator)
	dishHandler := handlers.NewDishHandler(app.DishService, app.Validator)

	RegisterMenuRoutes(apiV1, menuHandler, readCache)
	RegisterSubmenuRoutes(apiV1, submenuHandler, readCache)
	RegisterDishRoutes(apiV1, dishHandler, readCache)

	checks := map[string]handlers.Pinger{}
	if app.DBPool != nil {
		checks["database"] = app.DBPool
	}
	if app.RedisClient != nil {
		rdb := app.RedisClient
		checks["redis"] = handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	router.GET("/health", handlers.NewHealthHandler(checks).HealthCheck)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if app.Metrics != nil {
		router.GET(app.Config.Metrics.Path, gin.WrapH(app.Metrics.Handler()))
	}
}

// withCache prepends the read-through middleware when caching is enabled.
func withCache(readCache, h gin.HandlerFunc) []gin.HandlerFunc {
	if readCache == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{readCache, h}
}

package container

import (
	"context"
	"fmt"
	"time"

	"amana-bookstore/internal/config"
	cartHandler "amana-bookstore/internal/domains/cart/handler"
	cartRepo "amana-bookstore/internal/domains/cart/repository"
	cartService "amana-bookstore/internal/domains/cart/service"
	"amana-bookstore/internal/domains/catalog/data"
	catalogHandler "amana-bookstore/internal/domains/catalog/handler"
	catalogService "amana-bookstore/internal/domains/catalog/service"
	infraCache "amana-bookstore/internal/infrastructure/cache"
	"amana-bookstore/internal/infrastructure/database"
	"amana-bookstore/pkg/cache"
	"amana-bookstore/pkg/logger"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	CartRepo cartRepo.RepositoryInterface

	CatalogService catalogService.ServiceInterface
	CartService    cartService.ServiceInterface

	CatalogHandler *catalogHandler.Handler
	CartHandler    *cartHandler.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		// the catalog cache is an optimization, not a dependency
		logger.Warn("redis unavailable, catalog responses will not be cached", map[string]interface{}{
			"error": err.Error(),
		})
	}
	c.Cache = redisCache

	c.CartRepo = cartRepo.NewPostgresRepository(db.Pool)

	c.CatalogService = catalogService.NewCatalogService(data.Books, data.Reviews)
	c.CartService = cartService.NewCartService(c.CartRepo, c.CatalogService)

	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService, c.Cache)
	c.CartHandler = cartHandler.NewHandler(c.CartService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
}

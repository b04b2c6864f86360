package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicavet/rut-api/internal/config"
	"github.com/clinicavet/rut-api/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all service dependencies
type Container struct {
	config      *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	cache       *CacheService

	Metrics      *metrics.Metrics
	RUTService   RUTServiceInterface
	CacheService CacheServiceInterface
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config:  cfg,
		logger:  logger,
		Metrics: metrics.New(),
	}

	if cfg.Redis.Enabled {
		container.initRedis()
	} else {
		logger.Info("Redis disabled, using memory cache")
	}

	container.initServices()

	return container, nil
}

// initRedis initializes Redis client. A failed ping leaves the container
// on the memory cache.
func (c *Container) initRedis() {
	client := redis.NewClient(&redis.Options{
		Addr:         c.config.Redis.Addr(),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), c.config.Redis.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		c.logger.WithFields(logrus.Fields{
			"addr":  c.config.Redis.Addr(),
			"error": err.Error(),
		}).Warn("Redis connection failed, running with memory cache")
		_ = client.Close()
		return
	}

	c.redisClient = client
	c.logger.WithField("addr", c.config.Redis.Addr()).Info("Redis connection established")
}

// initServices initializes all services
func (c *Container) initServices() {
	c.cache = NewCacheService(c.redisClient, c.config.RUT.CacheTTL, c.logger)
	c.cache.StartCleanupRoutine(5 * time.Minute)
	c.CacheService = c.cache

	c.RUTService = NewRUTService(c.config.RUT, c.CacheService, c.Metrics, c.logger)
}

// Close closes all service connections
func (c *Container) Close() error {
	var errs []error

	if c.cache != nil {
		c.cache.Stop()
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	return map[string]interface{}{
		"cache": c.CacheService.Health(),
		"rut":   c.RUTService.Health(),
	}
}

// CacheSize returns the number of entries in the memory cache
func (c *Container) CacheSize() int {
	return c.cache.MemorySize()
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

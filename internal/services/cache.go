package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// KeyPrefix namespaces every cache entry written by this service
const KeyPrefix = "rut:"

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("key not found")

// CacheService caches validation results in Redis, falling back to an
// in-memory map when Redis is disabled or failing
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
	now    func() time.Time

	// In-memory fallback when Redis is not available
	memCache map[string]cacheItem
	memMutex sync.RWMutex

	stopOnce sync.Once
	stop     chan struct{}
}

type cacheItem struct {
	value     string
	expiresAt time.Time
}

// NewCacheService creates a new cache service. client may be nil.
func NewCacheService(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *CacheService {
	return &CacheService{
		client:   client,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		memCache: make(map[string]cacheItem),
		stop:     make(chan struct{}),
	}
}

// Get retrieves a value from cache
func (c *CacheService) Get(ctx context.Context, key string) (string, error) {
	// Try Redis first if available
	if c.client != nil {
		val, err := c.client.Get(ctx, key).Result()
		if err == nil {
			c.logger.WithField("key", key).Debug("Cache hit (Redis)")
			return val, nil
		}
		if !errors.Is(err, redis.Nil) {
			c.logger.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("Redis get error, falling back to memory cache")
		}
	}

	// Fallback to memory cache
	c.memMutex.RLock()
	item, exists := c.memCache[key]
	c.memMutex.RUnlock()

	if !exists {
		return "", ErrCacheMiss
	}

	if c.now().After(item.expiresAt) {
		// Item expired, remove it
		c.memMutex.Lock()
		delete(c.memCache, key)
		c.memMutex.Unlock()
		return "", ErrCacheMiss
	}

	c.logger.WithField("key", key).Debug("Cache hit (memory)")
	return item.value, nil
}

// Set stores a value in cache with TTL
func (c *CacheService) Set(ctx context.Context, key string, value string) error {
	// Try Redis first if available
	if c.client != nil {
		err := c.client.Set(ctx, key, value, c.ttl).Err()
		if err == nil {
			c.logger.WithField("key", key).Debug("Cache set (Redis)")
			return nil
		}
		c.logger.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Redis set error, falling back to memory cache")
	}

	// Fallback to memory cache
	c.memMutex.Lock()
	c.memCache[key] = cacheItem{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
	c.memMutex.Unlock()

	c.logger.WithField("key", key).Debug("Cache set (memory)")
	return nil
}

// Delete removes a value from cache
func (c *CacheService) Delete(ctx context.Context, key string) error {
	if c.client != nil {
		if err := c.client.Del(ctx, key).Err(); err != nil {
			c.logger.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("Redis delete error")
		}
	}

	// Also remove from memory cache
	c.memMutex.Lock()
	delete(c.memCache, key)
	c.memMutex.Unlock()

	c.logger.WithField("key", key).Debug("Cache delete")
	return nil
}

// Clear removes every entry under KeyPrefix. Other keys in the Redis
// database are left alone.
func (c *CacheService) Clear(ctx context.Context) error {
	if c.client != nil {
		iter := c.client.Scan(ctx, 0, KeyPrefix+"*", 500).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			c.logger.WithField("error", err.Error()).Warn("Redis scan error")
		} else if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.logger.WithField("error", err.Error()).Warn("Redis clear error")
			}
		}
	}

	// Clear memory cache
	c.memMutex.Lock()
	c.memCache = make(map[string]cacheItem)
	c.memMutex.Unlock()

	c.logger.Info("Cache cleared")
	return nil
}

// Exists checks if a key exists in cache
func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	if c.client != nil {
		count, err := c.client.Exists(ctx, key).Result()
		if err == nil && count > 0 {
			return true, nil
		}
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("Redis exists error, checking memory cache")
		}
	}

	// Check memory cache
	c.memMutex.RLock()
	item, exists := c.memCache[key]
	c.memMutex.RUnlock()

	if !exists {
		return false, nil
	}

	// Check if expired
	if c.now().After(item.expiresAt) {
		c.memMutex.Lock()
		delete(c.memCache, key)
		c.memMutex.Unlock()
		return false, nil
	}

	return true, nil
}

// GetStats returns cache statistics
func (c *CacheService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// Redis stats
	if c.client != nil {
		size, err := c.client.DBSize(ctx).Result()
		if err == nil {
			stats["redis"] = map[string]interface{}{
				"available": true,
				"keys":      size,
			}
		} else {
			stats["redis"] = map[string]interface{}{
				"available": false,
				"error":     err.Error(),
			}
		}
	} else {
		stats["redis"] = map[string]interface{}{
			"available": false,
		}
	}

	// Memory cache stats
	stats["memory"] = map[string]interface{}{
		"size": c.MemorySize(),
		"ttl":  c.ttl.String(),
	}

	return stats, nil
}

// MemorySize returns the number of entries held in the memory fallback
func (c *CacheService) MemorySize() int {
	c.memMutex.RLock()
	defer c.memMutex.RUnlock()
	return len(c.memCache)
}

// Health returns cache service health status
func (c *CacheService) Health() map[string]interface{} {
	health := map[string]interface{}{
		"status": "healthy",
	}

	// Check Redis health
	if c.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.client.Ping(ctx).Err(); err != nil {
			// Memory fallback keeps serving
			health["status"] = "degraded"
			health["redis"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
		} else {
			health["redis"] = map[string]interface{}{
				"status": "healthy",
			}
		}
	} else {
		health["redis"] = map[string]interface{}{
			"status": "disabled",
		}
	}

	// Memory cache is always available
	health["memory"] = map[string]interface{}{
		"status": "healthy",
		"size":   c.MemorySize(),
	}

	return health
}

// cleanupExpired removes expired items from memory cache
func (c *CacheService) cleanupExpired() int {
	c.memMutex.Lock()
	defer c.memMutex.Unlock()

	now := c.now()
	removed := 0
	for key, item := range c.memCache {
		if now.After(item.expiresAt) {
			delete(c.memCache, key)
			removed++
		}
	}
	return removed
}

// StartCleanupRoutine starts a goroutine to periodically clean expired items
// until Stop is called
func (c *CacheService) StartCleanupRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := c.cleanupExpired(); removed > 0 {
					c.logger.WithField("removed", removed).Debug("Expired cache entries removed")
				}
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop ends the cleanup routine
func (c *CacheService) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Reports are deterministic over a record snapshot, so a short
// TTL only bounds how stale a downloaded export can be.
const (
	ReportCacheTTL    = 5 * time.Minute
	DashboardCacheTTL = time.Minute
)

// CacheService provides a Redis cache-aside layer for rendered exports and
// dashboard payloads.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetReport retrieves a cached export envelope. Returns nil if not cached
// or caching is disabled.
func (c *CacheService) GetReport(ctx context.Context, kind, format string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, reportKey(kind, format)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetReport stores a rendered export envelope.
func (c *CacheService) SetReport(ctx context.Context, kind, format string, data []byte) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, reportKey(kind, format), data, ReportCacheTTL).Err()
}

// GetDashboard retrieves the cached dashboard payload. Returns nil if not cached.
func (c *CacheService) GetDashboard(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, dashboardKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetDashboard stores the dashboard payload.
func (c *CacheService) SetDashboard(ctx context.Context, data []byte) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, dashboardKey, data, DashboardCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

const dashboardKey = "dashboard"

func reportKey(kind, format string) string {
	return fmt.Sprintf("report:%s:%s", kind, format)
}

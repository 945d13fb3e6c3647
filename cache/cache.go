package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/demosite/blogshop-backend/config"
)

// Options builds the Redis client options from the resolved settings. The
// socket tunables mirror the deployment's cache backend configuration.
func Options(settings config.Settings) *redis.Options {
	return &redis.Options{
		Addr:        settings.Cache.Addr(),
		DB:          config.CacheDB,
		DialTimeout: config.CacheDialTimeout,
		ReadTimeout: config.CacheReadTimeout,
	}
}

// NewClient returns a Redis client for the configured cache backend. The
// client pools connections itself; callers only Close it on shutdown.
func NewClient(settings config.Settings) *redis.Client {
	return redis.NewClient(Options(settings))
}

// Ping checks cache reachability with the configured connect timeout.
func Ping(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, config.CacheDialTimeout)
	defer cancel()
	return client.Ping(ctx).Err()
}

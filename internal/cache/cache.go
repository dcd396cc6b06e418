// Package cache keeps short-lived copies of nearby-center search results.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"startconnect/internal/config"
	"startconnect/internal/model"
)

// NearbyCache stores center lists keyed by a rounded search.
// Misses and backend failures both report ok == false.
type NearbyCache interface {
	GetNearby(ctx context.Context, q model.NearbyQuery) ([]model.Center, bool)
	SetNearby(ctx context.Context, q model.NearbyQuery, centers []model.Center)
}

// redisClient is the part of *redis.Client used here.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisCache struct {
	client redisClient
	ttl    time.Duration
	log    logrus.FieldLogger
}

// New returns a Redis-backed cache, or a no-op one when cfg.Addr is empty.
func New(ctx context.Context, cfg config.RedisConfig, log logrus.FieldLogger) (NearbyCache, func() error, error) {
	if cfg.Addr == "" {
		return Noop{}, func() error { return nil }, nil
	}
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cli.Ping(pingCtx).Err(); err != nil {
		_ = cli.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return newRedisCache(cli, time.Duration(cfg.TTLSec)*time.Second, log), cli.Close, nil
}

func newRedisCache(c redisClient, ttl time.Duration, log logrus.FieldLogger) *redisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisCache{client: c, ttl: ttl, log: log}
}

// NearbyKey rounds coordinates to about 100 m so neighbouring searches share entries.
func NearbyKey(q model.NearbyQuery) string {
	return fmt.Sprintf("centers:nearby:%.3f:%.3f:%.1f:%s",
		q.Latitude, q.Longitude, q.RadiusKm, strings.ToLower(q.Sport))
}

func (c *redisCache) GetNearby(ctx context.Context, q model.NearbyQuery) ([]model.Center, bool) {
	raw, err := c.client.Get(ctx, NearbyKey(q)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithError(err).Warn("cache_get_failed")
		}
		return nil, false
	}
	var out []model.Center
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.WithError(err).Warn("cache_decode_failed")
		return nil, false
	}
	return out, true
}

func (c *redisCache) SetNearby(ctx context.Context, q model.NearbyQuery, centers []model.Center) {
	raw, err := json.Marshal(centers)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, NearbyKey(q), raw, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("cache_set_failed")
	}
}

// Noop never hits.
type Noop struct{}

func (Noop) GetNearby(context.Context, model.NearbyQuery) ([]model.Center, bool) { return nil, false }
func (Noop) SetNearby(context.Context, model.NearbyQuery, []model.Center)        {}

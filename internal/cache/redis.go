// Package cache holds computed day schedules in redis. Cache keys embed a
// per-sport version counter; bumping the counter on any configuration change
// orphans every cached schedule of that sport without scanning keys.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/redball-academy/academy-booking/internal/domain"
)

type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func New(addr, password string, db int, ttl time.Duration, logger logger.Logger) *PreviewCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &PreviewCache{client: client, ttl: ttl, logger: logger}
}

func (c *PreviewCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *PreviewCache) Close() error {
	return c.client.Close()
}

func (c *PreviewCache) version(ctx context.Context, sportID string) (int64, error) {
	v, err := c.client.Get(ctx, "schedule:ver:"+sportID).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *PreviewCache) key(sportID string, ver int64, date domain.Date) string {
	return fmt.Sprintf("schedule:%s:%d:%s", sportID, ver, date)
}

func (c *PreviewCache) Get(ctx context.Context, sportID string, date domain.Date) (*domain.DaySchedule, bool) {
	ver, err := c.version(ctx, sportID)
	if err != nil {
		c.logger.Warn("schedule cache read skipped",
			logger.String("sport_id", sportID),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	val, err := c.client.Get(ctx, c.key(sportID, ver, date)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("schedule cache read skipped",
			logger.String("sport_id", sportID),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	var s domain.DaySchedule
	if err = json.Unmarshal([]byte(val), &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (c *PreviewCache) Set(ctx context.Context, sportID string, date domain.Date, s *domain.DaySchedule) {
	ver, err := c.version(ctx, sportID)
	if err != nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err = c.client.Set(ctx, c.key(sportID, ver, date), data, c.ttl).Err(); err != nil {
		c.logger.Warn("schedule cache write skipped",
			logger.String("sport_id", sportID),
			logger.String("error", err.Error()),
		)
	}
}

// Invalidate bumps the sport's version counter. Stale entries fall out via
// their own TTL.
func (c *PreviewCache) Invalidate(ctx context.Context, sportID string) {
	if err := c.client.Incr(ctx, "schedule:ver:"+sportID).Err(); err != nil {
		c.logger.Warn("schedule cache invalidation skipped",
			logger.String("sport_id", sportID),
			logger.String("error", err.Error()),
		)
	}
}

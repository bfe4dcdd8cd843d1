// Package cache provides the read-through cache used for catalog listings.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"travelhub/config"
	"travelhub/internal/domain/entity"
	"travelhub/internal/domain/lifecycle"
	"travelhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	hotelsKey        = "travelhub:catalog:hotels"
	defaultHotelsTTL = 5 * time.Minute
)

type redisHotelCache struct {
	client    *redis.Client
	hotelsTTL time.Duration
}

// Params defines the dependencies of the hotel cache
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewHotelCache returns a Redis-backed cache when enabled and a no-op cache otherwise.
func NewHotelCache(params Params) service.HotelCache {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Hotel cache disabled")

		return noopHotelCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Reads fall back to the database, so an unreachable cache is not fatal
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, hotel cache will miss",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	params.Logger.Info("Hotel cache enabled", slog.String("addr", cfg.Addr))

	return newRedisHotelCache(client, cfg.HotelsTTL)
}

func newRedisHotelCache(client *redis.Client, ttl time.Duration) *redisHotelCache {
	if ttl <= 0 {
		ttl = defaultHotelsTTL
	}

	return &redisHotelCache{client: client, hotelsTTL: ttl}
}

func (c *redisHotelCache) GetHotels(ctx context.Context) ([]*entity.Hotel, bool, error) {
	data, err := c.client.Get(ctx, hotelsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "redis get hotels")
	}

	var hotels []*entity.Hotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, false, errors.Wrap(err, "decode cached hotels")
	}

	return hotels, true, nil
}

func (c *redisHotelCache) SetHotels(ctx context.Context, hotels []*entity.Hotel) error {
	payload, err := json.Marshal(hotels)
	if err != nil {
		return errors.Wrap(err, "encode hotels")
	}

	return errors.Wrap(c.client.Set(ctx, hotelsKey, payload, c.hotelsTTL).Err(), "redis set hotels")
}

type noopHotelCache struct{}

func (noopHotelCache) GetHotels(context.Context) ([]*entity.Hotel, bool, error) {
	return nil, false, nil
}

func (noopHotelCache) SetHotels(context.Context, []*entity.Hotel) error {
	return nil
}

package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"travelhub/config"
	"travelhub/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHotelCache_DisabledIsNoop(t *testing.T) {
	tests := []struct {
		name  string
		cache *config.CacheConfig
	}{
		{name: "missing section", cache: nil},
		{name: "disabled", cache: &config.CacheConfig{Enabled: false, Addr: "localhost:6379"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotelCache := NewHotelCache(Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    &config.Config{Cache: tt.cache},
				Logger:    newDiscardLogger(),
			})
			require.IsType(t, noopHotelCache{}, hotelCache)

			hotels, hit, err := hotelCache.GetHotels(context.Background())
			assert.NoError(t, err)
			assert.False(t, hit)
			assert.Nil(t, hotels)
			assert.NoError(t, hotelCache.SetHotels(context.Background(), []*entity.Hotel{{ID: 1}}))
		})
	}
}

func TestNewHotelCache_Enabled(t *testing.T) {
	hotelCache := NewHotelCache(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Cache: &config.CacheConfig{Enabled: true, Addr: "localhost:6379", HotelsTTL: time.Minute}},
		Logger:    newDiscardLogger(),
	})

	redisCache, ok := hotelCache.(*redisHotelCache)
	require.True(t, ok)
	assert.Equal(t, time.Minute, redisCache.hotelsTTL)
}

func TestNewRedisHotelCache_DefaultTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	assert.Equal(t, defaultHotelsTTL, newRedisHotelCache(client, 0).hotelsTTL)
}
